// Package utility - Test vòng tạo và xác thực JWT token.
package utility

import (
	"testing"
)

func TestCreateAndVerifyToken(t *testing.T) {
	secret := "test-secret"
	userID := "507f1f77bcf86cd799439011"

	result, err := CreateToken(secret, userID, "18f2a3b", "42")
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}
	tokenString := result["token"]
	if tokenString == "" {
		t.Fatal("CreateToken trả về token rỗng")
	}

	claims, err := VerifyToken(secret, tokenString)
	if err != nil {
		t.Fatalf("VerifyToken trả về lỗi với token hợp lệ: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %q, muốn %q", claims.UserID, userID)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	result, err := CreateToken("secret-a", "507f1f77bcf86cd799439011", "18f2a3b", "7")
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}

	if _, err := VerifyToken("secret-b", result["token"]); err == nil {
		t.Error("Token ký bằng secret khác phải bị từ chối")
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	if _, err := VerifyToken("secret", "không.phải.jwt"); err == nil {
		t.Error("Chuỗi không phải JWT phải bị từ chối")
	}
}
