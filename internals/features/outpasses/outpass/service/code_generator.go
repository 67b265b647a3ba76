// file: internals/features/outpasses/outpass/service/code_generator.go
package service

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"gorm.io/gorm"

	"outpass_backend/internals/features/outpasses/outpass/model"
)

const (
	codeMin  = 100000
	codeSpan = 900000 // codes are uniform over [100000, 999999]

	// With a handful of live codes against a 900k space, a collision redraw
	// is already rare; ten attempts not succeeding means something is broken.
	maxCodeAttempts = 10
)

// randomCode draws an unbiased 6-digit code via rejection sampling.
func randomCode() (string, error) {
	// largest multiple of codeSpan that fits in uint32
	limit := uint32((uint64(1<<32) / codeSpan) * codeSpan)
	var buf [4]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		v := binary.BigEndian.Uint32(buf[:])
		if v >= limit {
			continue
		}
		return fmt.Sprintf("%06d", codeMin+v%codeSpan), nil
	}
}

// drawCode is the code source used by generation; swapped out in tests to
// script specific draws.
var drawCode = randomCode

// GenerateExitCode mints an exit code unique among outpasses currently in
// READY_FOR_EXIT. Must run inside the transaction that assigns the code, so
// a racing Vacate cannot mint the same live code.
func GenerateExitCode(tx *gorm.DB) (string, error) {
	return generateLiveCode(tx, "outpass_exit_code", model.StatusReadyForExit, "")
}

// GenerateReturnCode mints a return code unique among outpasses currently in
// CHECKED_OUT, under the same transactional rule. exitCode is the code the
// same request is leaving behind: at generation time the row is still
// READY_FOR_EXIT, so the CHECKED_OUT scope alone would let the return code
// equal the exit code and a resubmitted exit scan would complete the outpass
// in one step.
func GenerateReturnCode(tx *gorm.DB, exitCode string) (string, error) {
	return generateLiveCode(tx, "outpass_return_code", model.StatusCheckedOut, exitCode)
}

func generateLiveCode(tx *gorm.DB, column string, scope model.Status, avoid string) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := drawCode()
		if err != nil {
			return "", err
		}
		if avoid != "" && code == avoid {
			continue
		}
		var n int64
		if err := tx.Model(&model.OutpassModel{}).
			Where(column+" = ? AND outpass_status = ?", code, scope).
			Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not mint a unique code after %d attempts", maxCodeAttempts)
}

// FindLiveExitCode resolves a code against the exit leg: it matches only
// while the outpass sits in READY_FOR_EXIT, so a consumed or reused code
// falls through to gorm.ErrRecordNotFound. Callers inside a transition
// transaction attach their row lock to tx before calling.
func FindLiveExitCode(tx *gorm.DB, code string) (*model.OutpassModel, error) {
	var o model.OutpassModel
	err := tx.
		Where("outpass_exit_code = ? AND outpass_status = ?", code, model.StatusReadyForExit).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// FindLiveReturnCode is the return-leg counterpart: the code is live only
// while the outpass is CHECKED_OUT.
func FindLiveReturnCode(tx *gorm.DB, code string) (*model.OutpassModel, error) {
	var o model.OutpassModel
	err := tx.
		Where("outpass_return_code = ? AND outpass_status = ?", code, model.StatusCheckedOut).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}
