// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	authdto "labour_ledger/internal/api/auth/dto"
	models "labour_ledger/internal/api/auth/models"
	basesvc "labour_ledger/internal/api/base/service"
	"labour_ledger/internal/common"
	"labour_ledger/internal/global"
	"labour_ledger/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký tài khoản mới.
// Email phải chưa tồn tại; mật khẩu được hash bằng bcrypt trước khi lưu.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	// Kiểm tra email đã tồn tại chưa (unique index trên email là chốt chặn cuối cùng)
	if _, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil); err == nil {
		return nil, common.NewError(
			common.ErrCodeDatabaseQuery,
			fmt.Sprintf("Email '%s' đã được sử dụng", input.Email),
			common.StatusConflict,
			nil,
		)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi hash mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: string(hashed),
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("Register: Đăng ký tài khoản thành công")
	return &created, nil
}

// Login xác thực email + mật khẩu, tạo JWT token mới và lưu vào user.
// Trả về user kèm token để client sử dụng cho các request sau.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, string, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, "", common.NewError(common.ErrCodeAuth, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, "", common.NewError(common.ErrCodeInternalServer, "Lỗi tạo token", common.StatusInternalServerError, err)
	}
	token := tokenMap["token"]

	updateData := &basesvc.UpdateData{Set: map[string]interface{}{"token": token}}
	updatedUser, err := s.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("Login: Lỗi khi cập nhật token vào user")
		return nil, "", err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "email": updatedUser.Email}).Info("Login: Đăng nhập thành công")
	return &updatedUser, token, nil
}

// Logout đăng xuất người dùng (thu hồi token hiện tại).
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Set:   map[string]interface{}{},
		Unset: map[string]interface{}{"token": ""},
	}
	_, err := s.UpdateById(ctx, userID, updateData)
	return err
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ. Token hiện tại bị thu hồi.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không chính xác", common.StatusUnauthorized, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Lỗi hash mật khẩu", common.StatusInternalServerError, err)
	}

	updateData := &basesvc.UpdateData{
		Set:   map[string]interface{}{"password": string(hashed)},
		Unset: map[string]interface{}{"token": ""},
	}
	_, err = s.UpdateById(ctx, userID, updateData)
	return err
}
