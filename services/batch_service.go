package services

import (
	"fmt"
	"sync"

	"github.com/openvoucher/voucherhub/models"
	"github.com/openvoucher/voucherhub/repositories"
	"github.com/openvoucher/voucherhub/utils"
	"gorm.io/gorm"
)

const (
	defaultChunkSize   = 100
	maxWorkersPerChunk = 8
)

// BatchService performs bulk voucher operations with per-item failure
// isolation. All items of one call share a single transaction: item
// failures are collected as data, and the whole unit of work commits once
// at the end. Only a failure of that final commit aborts the batch.
type BatchService struct {
	db        *gorm.DB
	chunkSize int
}

// NewBatchService creates a batch service. A non-positive chunkSize falls
// back to the default of 100 items per chunk.
func NewBatchService(db *gorm.DB, chunkSize int) *BatchService {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &BatchService{db: db, chunkSize: chunkSize}
}

// BatchCreate validates and stages every payload, fanning chunks out
// concurrently. Failed items are reported with their original input index
// and payload; they never abort the rest of the batch.
func (s *BatchService) BatchCreate(items []models.VoucherCreateRequest) (*models.BatchCreateResult, error) {
	total := len(items)
	result := &models.BatchCreateResult{Total: total, Failures: []models.BatchCreateFailure{}}
	if total == 0 {
		return result, nil
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	// outcomes is indexed by input position; nil marks a success
	outcomes := make([]*models.BatchCreateFailure, total)

	// The shared transaction handle is not safe for concurrent writes, so
	// workers validate in parallel and serialize on the mutex to stage rows.
	var mu sync.Mutex

	var wg sync.WaitGroup
	for start := 0; start < total; start += s.chunkSize {
		end := start + s.chunkSize
		if end > total {
			end = total
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			s.processCreateChunk(tx, &mu, items, outcomes, start, end)
		}(start, end)
	}
	wg.Wait()

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		utils.LogError("Batch create commit failed: %v", err)
		return nil, &models.BatchCommitError{Op: "batch create", Err: err}
	}

	for _, failure := range outcomes {
		if failure == nil {
			result.SuccessCount++
		} else {
			result.FailureCount++
			result.Failures = append(result.Failures, *failure)
		}
	}

	utils.LogInfo("Batch create finished: %d succeeded, %d failed of %d",
		result.SuccessCount, result.FailureCount, result.Total)
	return result, nil
}

// processCreateChunk runs one chunk's items through a bounded worker pool
func (s *BatchService) processCreateChunk(tx *gorm.DB, mu *sync.Mutex, items []models.VoucherCreateRequest, outcomes []*models.BatchCreateFailure, start, end int) {
	workers := end - start
	if workers > maxWorkersPerChunk {
		workers = maxWorkersPerChunk
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				outcomes[i] = s.createOne(tx, mu, &items[i], i)
			}
		}()
	}

	for i := start; i < end; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
}

// createOne validates and stages a single voucher. The insert runs in a
// savepoint so a failed row cannot poison the shared transaction.
func (s *BatchService) createOne(tx *gorm.DB, mu *sync.Mutex, req *models.VoucherCreateRequest, index int) *models.BatchCreateFailure {
	if err := validateCreateRequest(req); err != nil {
		return &models.BatchCreateFailure{Index: index, Error: err.Error(), Data: *req}
	}

	voucher := req.ToVoucher()

	mu.Lock()
	defer mu.Unlock()

	err := tx.Transaction(func(itemTx *gorm.DB) error {
		return repositories.NewVoucherRepository(itemTx).Create(voucher)
	})
	if err != nil {
		return &models.BatchCreateFailure{Index: index, Error: err.Error(), Data: *req}
	}
	return nil
}

// BatchUpdate applies partial updates concurrently with the same
// isolation and commit semantics as BatchCreate. Failures are reported
// per voucher id.
func (s *BatchService) BatchUpdate(updates []models.BatchUpdateItem) (*models.BatchUpdateResult, error) {
	total := len(updates)
	result := &models.BatchUpdateResult{Total: total, Failures: []models.BatchUpdateFailure{}}
	if total == 0 {
		return result, nil
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	outcomes := make([]*models.BatchUpdateFailure, total)
	var mu sync.Mutex

	workers := total
	if workers > maxWorkersPerChunk {
		workers = maxWorkersPerChunk
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				outcomes[i] = s.updateOne(tx, &mu, &updates[i])
			}
		}()
	}

	for i := 0; i < total; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		utils.LogError("Batch update commit failed: %v", err)
		return nil, &models.BatchCommitError{Op: "batch update", Err: err}
	}

	for _, failure := range outcomes {
		if failure == nil {
			result.SuccessCount++
		} else {
			result.FailureCount++
			result.Failures = append(result.Failures, *failure)
		}
	}

	utils.LogInfo("Batch update finished: %d succeeded, %d failed of %d",
		result.SuccessCount, result.FailureCount, result.Total)
	return result, nil
}

// updateOne looks up, validates and stages one update under the shared
// transaction. The lookup participates in the same unit of work, so the
// whole item runs while holding the mutex.
func (s *BatchService) updateOne(tx *gorm.DB, mu *sync.Mutex, item *models.BatchUpdateItem) *models.BatchUpdateFailure {
	mu.Lock()
	defer mu.Unlock()

	repo := repositories.NewVoucherRepository(tx)
	voucher, err := repo.GetByID(item.ID)
	if err != nil {
		return &models.BatchUpdateFailure{ID: item.ID, Error: err.Error()}
	}
	if voucher == nil {
		return &models.BatchUpdateFailure{
			ID:    item.ID,
			Error: fmt.Sprintf("voucher with id %d not found", item.ID),
		}
	}

	patch, err := buildUpdatePatch(voucher, &item.Data)
	if err != nil {
		return &models.BatchUpdateFailure{ID: item.ID, Error: err.Error()}
	}

	err = tx.Transaction(func(itemTx *gorm.DB) error {
		return repositories.NewVoucherRepository(itemTx).Update(voucher, patch)
	})
	if err != nil {
		return &models.BatchUpdateFailure{ID: item.ID, Error: err.Error()}
	}
	return nil
}
