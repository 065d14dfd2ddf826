package laboursvc

import (
	"context"
	"errors"
	"time"

	labourdto "labour_ledger/internal/api/labour/dto"
	models "labour_ledger/internal/api/labour/models"
	"labour_ledger/internal/common"
	"labour_ledger/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BulkFailedRecord mô tả một bản ghi bị loại trong lần chấm công hàng loạt,
// kèm index trong mảng đầu vào để client đối chiếu lại.
type BulkFailedRecord struct {
	Index         int                             `json:"index"`
	Reason        string                          `json:"reason"`
	OriginalInput labourdto.AttendanceCreateInput `json:"originalInput"`
}

// BulkAddResult kết quả chấm công hàng loạt
type BulkAddResult struct {
	InsertedCount int                `json:"insertedCount"`
	FailedCount   int                `json:"failedCount"`
	FailedRecords []BulkFailedRecord `json:"failedRecords"`
}

// pendingBulkDoc là document đã qua kiểm tra hình thức, chờ ghi xuống MongoDB.
// origIndex giữ vị trí gốc trong mảng đầu vào để ánh xạ ngược write error.
type pendingBulkDoc struct {
	origIndex  int
	labourerID primitive.ObjectID
	projectID  primitive.ObjectID
	doc        bson.M
}

// BulkAdd ghi nhiều lượt chấm công trong một lần gọi.
// Mỗi bản ghi thành bại độc lập: bản ghi hỏng (thiếu trường, sai định dạng,
// tham chiếu không tồn tại, trùng bộ bốn khóa) bị loại kèm lý do, các bản ghi
// còn lại vẫn được ghi. Ghi xuống MongoDB ở chế độ unordered để một lỗi trùng
// không chặn các document phía sau trong cùng batch.
func (s *AttendanceService) BulkAdd(ctx context.Context, input *labourdto.AttendanceBulkInput, markedBy primitive.ObjectID) (*BulkAddResult, error) {
	result := &BulkAddResult{FailedRecords: []BulkFailedRecord{}}

	fail := func(idx int, reason string) {
		result.FailedRecords = append(result.FailedRecords, BulkFailedRecord{
			Index:         idx,
			Reason:        reason,
			OriginalInput: input.Records[idx],
		})
	}

	// Vòng 1: kiểm tra hình thức từng bản ghi
	var pending []pendingBulkDoc
	for i, rec := range input.Records {
		labourerID, err := primitive.ObjectIDFromHex(rec.LabourerID)
		if err != nil {
			fail(i, "labourerId không hợp lệ")
			continue
		}
		projectID, err := primitive.ObjectIDFromHex(rec.ProjectID)
		if err != nil {
			fail(i, "projectId không hợp lệ")
			continue
		}
		parsed, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			fail(i, "date phải có định dạng YYYY-MM-DD")
			continue
		}
		if !models.IsValidShift(rec.Shift) {
			fail(i, "shift phải là morning, evening hoặc night")
			continue
		}
		if !models.IsValidAttendanceStatus(rec.Status) {
			fail(i, "status phải là present, absent hoặc half-day")
			continue
		}

		doc := bson.M{
			"labourerId": labourerID,
			"projectId":  projectID,
			"date":       NormalizeDate(parsed.UnixMilli()),
			"shift":      rec.Shift,
			"status":     rec.Status,
		}
		if rec.MarkedBy != "" {
			oid, err := primitive.ObjectIDFromHex(rec.MarkedBy)
			if err != nil {
				fail(i, "markedBy không hợp lệ")
				continue
			}
			doc["markedBy"] = oid
		} else if !markedBy.IsZero() {
			doc["markedBy"] = markedBy
		}
		pending = append(pending, pendingBulkDoc{origIndex: i, labourerID: labourerID, projectID: projectID, doc: doc})
	}

	// Vòng 2: kiểm tra tham chiếu theo lô, tránh N truy vấn lẻ
	if len(pending) > 0 {
		labourerIDs := make([]primitive.ObjectID, 0, len(pending))
		projectIDs := make([]primitive.ObjectID, 0, len(pending))
		for _, p := range pending {
			labourerIDs = append(labourerIDs, p.labourerID)
			projectIDs = append(projectIDs, p.projectID)
		}

		validLabourers, err := existingIDSet(ctx, s.labourerService.Collection(), labourerIDs)
		if err != nil {
			return nil, err
		}
		validProjects, err := existingIDSet(ctx, s.projectService.Collection(), projectIDs)
		if err != nil {
			return nil, err
		}

		kept := pending[:0]
		for _, p := range pending {
			if !validLabourers[p.labourerID] {
				fail(p.origIndex, "Không tìm thấy lao động")
				continue
			}
			if !validProjects[p.projectID] {
				fail(p.origIndex, "Không tìm thấy dự án")
				continue
			}
			kept = append(kept, p)
		}
		pending = kept
	}

	if len(pending) == 0 {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Tất cả bản ghi trong batch đều không hợp lệ",
			common.StatusBadRequest,
			result.FailedRecords,
		)
	}

	now := utility.CurrentTimeInMilli()
	docs := make([]interface{}, 0, len(pending))
	for _, p := range pending {
		p.doc["createdAt"] = now
		p.doc["updatedAt"] = now
		docs = append(docs, p.doc)
	}

	writeFailed := 0
	_, err := s.Collection().InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		var bulkErr mongo.BulkWriteException
		if !errors.As(err, &bulkErr) {
			return nil, common.ConvertMongoError(err)
		}
		// Unordered insert: lỗi của từng document nằm trong WriteErrors,
		// các document khác trong batch vẫn được ghi bình thường
		for _, writeErr := range bulkErr.WriteErrors {
			origIndex := pending[writeErr.Index].origIndex
			reason := writeErr.Message
			if writeErr.Code == 11000 {
				reason = common.ErrAttendanceDuplicate.Error()
			}
			fail(origIndex, reason)
			writeFailed++
		}
	}

	result.InsertedCount = len(docs) - writeFailed
	result.FailedCount = len(result.FailedRecords)

	logrus.WithFields(logrus.Fields{
		"inserted": result.InsertedCount,
		"failed":   result.FailedCount,
		"total":    len(input.Records),
	}).Info("Chấm công hàng loạt hoàn tất")

	return result, nil
}

// existingIDSet trả về tập _id thực sự tồn tại trong collection trong số ids truyền vào.
func existingIDSet(ctx context.Context, col *mongo.Collection, ids []primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	set := make(map[primitive.ObjectID]bool, len(ids))
	if len(ids) == 0 {
		return set, nil
	}

	values, err := col.Distinct(ctx, "_id", bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	for _, v := range values {
		if oid, ok := v.(primitive.ObjectID); ok {
			set[oid] = true
		}
	}
	return set, nil
}
