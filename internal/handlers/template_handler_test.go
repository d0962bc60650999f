package handlers_test

import (
	"testing"
)

func TestTemplateLifecycleOverHTTP(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(t, db, "lawyer-1")

	// No template yet: client seeds the builder default from a 404.
	status, _ := doJSON(t, app, "GET", "/api/templates/familia", nil)
	if status != 404 {
		t.Fatalf("Expected 404 before first save, got %d", status)
	}

	status, result := doJSON(t, app, "POST", "/api/templates/familia", map[string]interface{}{
		"title": "Questionário - familia",
		"fields": []map[string]interface{}{
			{
				"id":    "field_a1",
				"type":  "text",
				"label": "Nome do cônjuge",
			},
			{
				"id":    "field_a2",
				"type":  "select",
				"label": "Regime de bens",
				"options": []map[string]string{
					{"value": "comunhao_parcial", "label": "Comunhão parcial"},
					{"value": "separacao_total", "label": "Separação total"},
				},
			},
		},
	})
	if status != 200 {
		t.Fatalf("Expected status 200 saving template, got %d (%v)", status, result)
	}
	saved := result["data"].(map[string]interface{})
	templateID := saved["id"].(string)
	if templateID == "" {
		t.Fatal("Expected persisted template id")
	}

	status, loaded := doJSON(t, app, "GET", "/api/templates/familia", nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	fields := loaded["fields"].([]interface{})
	if len(fields) != 2 {
		t.Fatalf("Expected 2 fields, got %d", len(fields))
	}
	first := fields[0].(map[string]interface{})
	if first["label"] != "Nome do cônjuge" {
		t.Errorf("Expected render order preserved, got %v", first)
	}

	// Re-save with the persisted id: update, not insert.
	status, _ = doJSON(t, app, "POST", "/api/templates/familia", map[string]interface{}{
		"id":    templateID,
		"title": "Questionário de família",
		"fields": []map[string]interface{}{
			{"id": "field_a1", "type": "text", "label": "Nome do cônjuge"},
		},
	})
	if status != 200 {
		t.Fatalf("Expected status 200 updating template, got %d", status)
	}

	status, loaded = doJSON(t, app, "GET", "/api/templates/familia", nil)
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if loaded["id"] != templateID {
		t.Errorf("Expected stable template id, got %v", loaded["id"])
	}
	if loaded["title"] != "Questionário de família" {
		t.Errorf("Expected updated title, got %v", loaded["title"])
	}
}

func TestFieldTypeVocabularyOverHTTP(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(t, db, "lawyer-1")

	status, entries := doJSONList(t, app, "GET", "/api/field-types")
	if status != 200 {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if len(entries) != 7 {
		t.Fatalf("Expected 7 field types, got %d", len(entries))
	}
	labels := make(map[string]string, len(entries))
	for _, e := range entries {
		entry := e.(map[string]interface{})
		labels[entry["value"].(string)] = entry["label"].(string)
	}
	if labels["select"] != "Seleção" {
		t.Errorf("Expected label Seleção for select, got %q", labels["select"])
	}
	if labels["boolean"] != "Sim/Não" {
		t.Errorf("Expected label Sim/Não for boolean, got %q", labels["boolean"])
	}
}

func TestTemplateValidationOverHTTP(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp(t, db, "lawyer-1")

	// Options on a non-select field are rejected.
	status, _ := doJSON(t, app, "POST", "/api/templates/civil", map[string]interface{}{
		"title": "Inválido",
		"fields": []map[string]interface{}{
			{
				"id":    "field_x",
				"type":  "text",
				"label": "Pergunta",
				"options": []map[string]string{
					{"value": "a", "label": "A"},
				},
			},
		},
	})
	if status != 400 {
		t.Errorf("Expected 400 for options on text field, got %d", status)
	}

	status, _ = doJSON(t, app, "GET", "/api/templates/maritime", nil)
	if status != 400 {
		t.Errorf("Expected 400 for unknown process type, got %d", status)
	}
}
