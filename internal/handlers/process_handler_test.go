package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// postJSON executes a JSON request against the test app and decodes the body.
func doJSON(t *testing.T, app *fiber.App, method, url string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp.StatusCode, result
}

// doJSONList executes a request whose response body is a JSON array.
func doJSONList(t *testing.T, app *fiber.App, method, url string) (int, []interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, url, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	var result []interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp.StatusCode, result
}

// createProcessViaAPI creates a process through the HTTP surface and returns
// its generated process key.
func createProcessViaAPI(t *testing.T, app *fiber.App, title, processType string) string {
	t.Helper()

	status, result := doJSON(t, app, "POST", "/api/processes", map[string]interface{}{
		"title":        title,
		"process_type": processType,
	})
	if status != 200 {
		t.Fatalf("Expected status 200 creating process, got %d (%v)", status, result)
	}

	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected data object in response, got %v", result)
	}
	key, _ := data["process_key"].(string)
	if key == "" {
		t.Fatal("Expected generated process_key in response")
	}
	return key
}

func TestProcessCRUDOverHTTP(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(t, db, "lawyer-1")

	key := createProcessViaAPI(t, app, "Reclamação trabalhista", "trabalhista")

	status, process := doJSON(t, app, "GET", "/api/processes/"+key, nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if process["title"] != "Reclamação trabalhista" || process["status"] != "active" {
		t.Errorf("Unexpected process: %v", process)
	}

	status, _ = doJSON(t, app, "PUT", "/api/processes/"+key, map[string]interface{}{
		"title":        "Reclamação revisada",
		"process_type": "trabalhista",
		"status":       "closed",
	})
	if status != 200 {
		t.Fatalf("Expected status 200 updating, got %d", status)
	}

	status, process = doJSON(t, app, "GET", "/api/processes/"+key, nil)
	if status != 200 || process["status"] != "closed" {
		t.Errorf("Expected closed process, got %d %v", status, process)
	}

	status, _ = doJSON(t, app, "DELETE", "/api/processes/"+key, nil)
	if status != 200 {
		t.Fatalf("Expected status 200 deleting, got %d", status)
	}
	status, _ = doJSON(t, app, "GET", "/api/processes/"+key, nil)
	if status != 404 {
		t.Errorf("Expected 404 after delete, got %d", status)
	}
}

func TestProcessValidationOverHTTP(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(t, db, "lawyer-1")

	status, result := doJSON(t, app, "POST", "/api/processes", map[string]interface{}{
		"title":        "Bad category",
		"process_type": "maritime",
	})
	if status != 400 {
		t.Errorf("Expected status 400 for unknown category, got %d (%v)", status, result)
	}
}

func TestProcessOwnershipScoping(t *testing.T) {
	db := setupTestDB(t)
	owner := setupTestApp(t, db, "lawyer-1")
	stranger := setupTestApp(t, db, "lawyer-2")

	key := createProcessViaAPI(t, owner, "Private case", "civil")

	status, _ := doJSON(t, stranger, "GET", "/api/processes/"+key, nil)
	if status != 404 {
		t.Errorf("Expected 404 for foreign lawyer, got %d", status)
	}

	status, listed := doJSONList(t, stranger, "GET", "/api/processes")
	if status != 200 {
		t.Fatalf("Expected 200 listing, got %d", status)
	}
	if len(listed) != 0 {
		t.Errorf("Expected empty listing for foreign lawyer, got %d", len(listed))
	}

	status, listed = doJSONList(t, owner, "GET", "/api/processes")
	if status != 200 {
		t.Fatalf("Expected 200 listing, got %d", status)
	}
	if len(listed) != 1 {
		t.Errorf("Expected 1 process for owner, got %d", len(listed))
	}
}

func TestProcessSummaryOverHTTP(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(t, db, "lawyer-1")

	createProcessViaAPI(t, app, "A", "trabalhista")
	createProcessViaAPI(t, app, "B", "civil")

	status, summary := doJSON(t, app, "GET", "/api/processes/summary", nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if summary["total"].(float64) != 2 {
		t.Errorf("Expected total 2, got %v", summary["total"])
	}
	byType, ok := summary["by_type"].(map[string]interface{})
	if !ok || byType["trabalhista"].(float64) != 1 {
		t.Errorf("Unexpected by_type: %v", summary["by_type"])
	}
}

func TestPublicShareLink(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(t, db, "lawyer-1")

	status, result := doJSON(t, app, "POST", "/api/processes", map[string]interface{}{
		"title":        "Shared case",
		"process_type": "civil",
		"client_email": "client@example.com",
	})
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	key := result["data"].(map[string]interface{})["process_key"].(string)

	status, public := doJSON(t, app, "GET", "/api/public/processes/"+key, nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}

	process, ok := public["process"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected process object, got %v", public)
	}
	if process["process_key"] != key || process["title"] != "Shared case" {
		t.Errorf("Unexpected public projection: %v", process)
	}
	// The share view must not leak client contact data or the owner id.
	for _, forbidden := range []string{"client_email", "client_name", "client_phone", "lawyer_id", "id"} {
		if _, present := process[forbidden]; present {
			t.Errorf("Expected %s to be absent from public projection", forbidden)
		}
	}
	if public["process_type_label"] != "Civil" {
		t.Errorf("Expected label Civil, got %v", public["process_type_label"])
	}

	status, _ = doJSON(t, app, "GET", "/api/public/processes/PROC-2026-00001", nil)
	if status != 404 {
		t.Errorf("Expected 404 for unknown key, got %d", status)
	}
}
