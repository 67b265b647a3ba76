// file: internals/features/outpasses/outpass/service/code_generator_test.go
package service

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestRandomCodeRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := randomCode()
		if err != nil {
			t.Fatalf("randomCode: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q has length %d", code, len(code))
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d out of [100000, 999999]", n)
		}
	}
}

func TestRandomCodeNoLeadingZero(t *testing.T) {
	// The range floor guarantees six significant digits; a leading zero
	// would mean the floor was not applied.
	for i := 0; i < 200; i++ {
		code, err := randomCode()
		if err != nil {
			t.Fatalf("randomCode: %v", err)
		}
		if code[0] == '0' {
			t.Fatalf("code %q starts with zero", code)
		}
	}
}

// scriptDraws replaces drawCode with a fixed sequence and returns a restore
// func for defer.
func scriptDraws(codes ...string) func() {
	prev := drawCode
	i := 0
	drawCode = func() (string, error) {
		if i >= len(codes) {
			return "", errScriptExhausted
		}
		c := codes[i]
		i++
		return c, nil
	}
	return func() { drawCode = prev }
}

var errScriptExhausted = errors.New("no scripted draws left")

func TestGenerateReturnCodeRedrawsOwnExitCode(t *testing.T) {
	db := openTestDB(t)

	// The row being checked out is still READY_FOR_EXIT when the return
	// code is minted, so its exit code is invisible to the CHECKED_OUT
	// uniqueness scope. Drawing it again must trigger a redraw, or a
	// resubmitted exit scan would double as the return scan.
	seedOutpass(t, db, uuid.NewString(), "READY_FOR_EXIT", "654321", "")

	restore := scriptDraws("654321", "654321", "222222")
	defer restore()

	code, err := GenerateReturnCode(db, "654321")
	if err != nil {
		t.Fatalf("GenerateReturnCode: %v", err)
	}
	if code != "222222" {
		t.Fatalf("code = %q, want the first draw distinct from the exit code", code)
	}
}

func TestGenerateReturnCodeRedrawsLiveCollision(t *testing.T) {
	db := openTestDB(t)
	seedOutpass(t, db, uuid.NewString(), "CHECKED_OUT", "", "333333")

	restore := scriptDraws("333333", "444444")
	defer restore()

	code, err := GenerateReturnCode(db, "999999")
	if err != nil {
		t.Fatalf("GenerateReturnCode: %v", err)
	}
	if code != "444444" {
		t.Fatalf("code = %q, want the draw after the live collision", code)
	}
}

func TestGenerateExitCodeSkipsLiveDuplicate(t *testing.T) {
	db := openTestDB(t)
	seedOutpass(t, db, uuid.NewString(), "READY_FOR_EXIT", "123456", "")
	// A completed outpass no longer holds its exit code live, so the same
	// digits are free to circulate again.
	seedOutpass(t, db, uuid.NewString(), "COMPLETED", "777777", "")

	restore := scriptDraws("123456", "777777")
	defer restore()

	code, err := GenerateExitCode(db)
	if err != nil {
		t.Fatalf("GenerateExitCode: %v", err)
	}
	if code != "777777" {
		t.Fatalf("code = %q, want 777777", code)
	}
}

func TestFindLiveExitCodeIgnoresConsumedCodes(t *testing.T) {
	db := openTestDB(t)
	liveID := uuid.NewString()
	seedOutpass(t, db, liveID, "READY_FOR_EXIT", "123456", "")
	seedOutpass(t, db, uuid.NewString(), "COMPLETED", "555555", "")

	o, err := FindLiveExitCode(db, "123456")
	if err != nil {
		t.Fatalf("live code lookup: %v", err)
	}
	if o.OutpassID.String() != liveID {
		t.Fatalf("resolved outpass %s, want %s", o.OutpassID, liveID)
	}

	// A code left behind by a finished outpass must not open the gate again.
	if _, err := FindLiveExitCode(db, "555555"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("consumed code lookup error = %v, want record-not-found", err)
	}
}

func TestExitCodeStopsMatchingAfterCheckout(t *testing.T) {
	db := openTestDB(t)
	id := uuid.NewString()
	seedOutpass(t, db, id, "READY_FOR_EXIT", "123456", "")

	if _, err := FindLiveExitCode(db, "123456"); err != nil {
		t.Fatalf("first scan: %v", err)
	}

	// The checkout transition flips the row and mints the return code in
	// the same transaction; afterwards the exit code is dead and only the
	// return code resolves.
	err := db.Exec(
		`UPDATE outpasses SET outpass_status = 'CHECKED_OUT', outpass_return_code = '888888' WHERE outpass_id = ?`,
		id,
	).Error
	if err != nil {
		t.Fatalf("checkout update: %v", err)
	}

	if _, err := FindLiveExitCode(db, "123456"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second exit scan error = %v, want record-not-found", err)
	}
	o, err := FindLiveReturnCode(db, "888888")
	if err != nil {
		t.Fatalf("return scan: %v", err)
	}
	if o.OutpassID.String() != id {
		t.Fatalf("return scan resolved %s, want %s", o.OutpassID, id)
	}
}

func TestFindLiveReturnCodeIgnoresFinishedRows(t *testing.T) {
	db := openTestDB(t)
	seedOutpass(t, db, uuid.NewString(), "COMPLETED", "", "888888")

	if _, err := FindLiveReturnCode(db, "888888"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("finished row return scan error = %v, want record-not-found", err)
	}
}
