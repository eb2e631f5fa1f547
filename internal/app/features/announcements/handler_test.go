package announcements

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/stratalinks/internal/app/store/announcement"
	"github.com/dalemusser/stratalinks/internal/testutil"
	"go.uber.org/zap"
)

func setup(t *testing.T) (http.Handler, *announcement.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return Routes(NewHandler(db, zap.NewNop())), announcement.New(db)
}

func check(router http.Handler, t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPost, "/check", body))
	return rec
}

func TestCheck_MissingNRP(t *testing.T) {
	router, _ := setup(t)

	rec := check(router, t, map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	env := testutil.DecodeEnvelope(t, rec)
	if env.Message != "NRP is required" {
		t.Errorf("message = %q, want %q", env.Message, "NRP is required")
	}
}

func TestCheck_InvalidFormat(t *testing.T) {
	router, _ := setup(t)

	for _, nrp := range []string{
		"abc123",
		"5000 0001",
		"500000001500000001500", // 21 digits
	} {
		rec := check(router, t, CheckRequest{NRP: nrp})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("NRP %q status = %d, want %d", nrp, rec.Code, http.StatusBadRequest)
			continue
		}
		env := testutil.DecodeEnvelope(t, rec)
		if env.Message != "Invalid NRP format" {
			t.Errorf("NRP %q message = %q, want %q", nrp, env.Message, "Invalid NRP format")
		}
	}
}

func TestCheck_Failed(t *testing.T) {
	router, _ := setup(t)

	rec := check(router, t, CheckRequest{NRP: "500099999"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var result CheckResult
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &result)
	if result.Status != "failed" {
		t.Errorf("result status = %q, want %q", result.Status, "failed")
	}
	if result.Name != FailedName {
		t.Errorf("result name = %q, want %q", result.Name, FailedName)
	}
	if result.Codename != "" {
		t.Errorf("result codename = %q, want empty", result.Codename)
	}
}

func TestCheck_Passed_StampsViewedOnce(t *testing.T) {
	router, store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, announcement.CreateInput{
		NRP:      "500000001",
		Name:     "Abdullah Azzam",
		Codename: "JMMI-2026-X7Y",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rec := check(router, t, CheckRequest{NRP: "500000001"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var result CheckResult
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &result)
	if result.Status != "passed" {
		t.Errorf("result status = %q, want %q", result.Status, "passed")
	}
	if result.Name != "Abdullah Azzam" {
		t.Errorf("result name = %q, want %q", result.Name, "Abdullah Azzam")
	}
	if result.Codename != "JMMI-2026-X7Y" {
		t.Errorf("result codename = %q, want %q", result.Codename, "JMMI-2026-X7Y")
	}

	first, err := store.GetByNRP(ctx, "500000001")
	if err != nil {
		t.Fatalf("GetByNRP() error = %v", err)
	}
	if first.ViewedAt == nil {
		t.Fatal("ViewedAt should be stamped after a passed check")
	}

	// A second check keeps the original stamp
	if rec := check(router, t, CheckRequest{NRP: "500000001"}); rec.Code != http.StatusOK {
		t.Fatalf("second check status = %d, want %d", rec.Code, http.StatusOK)
	}
	second, err := store.GetByNRP(ctx, "500000001")
	if err != nil {
		t.Fatalf("GetByNRP() error = %v", err)
	}
	if !second.ViewedAt.Equal(*first.ViewedAt) {
		t.Errorf("ViewedAt changed on second check: %v -> %v", first.ViewedAt, second.ViewedAt)
	}
}
