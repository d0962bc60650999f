package questionnaire

import (
	"encoding/json"
	"testing"

	"github.com/legalbridge/legalbridge/internal/catalog"
)

// TestLaborDefaults verifies the initial labor answer object.
func TestLaborDefaults(t *testing.T) {
	resp := NewResponse(catalog.TypeTrabalhista)
	labor, ok := resp.(*LaborResponse)
	if !ok {
		t.Fatalf("Expected *LaborResponse, got %T", resp)
	}

	if labor.WeeklyHours != 40 {
		t.Errorf("Expected weekly_hours=40, got %v", labor.WeeklyHours)
	}
	if !labor.HasFormalContract {
		t.Error("Expected has_formal_contract=true")
	}
	if labor.SpecificClaims == nil || len(labor.SpecificClaims) != 0 {
		t.Errorf("Expected empty specific_claims, got %v", labor.SpecificClaims)
	}
	if labor.DocumentsProvided == nil || len(labor.DocumentsProvided) != 0 {
		t.Errorf("Expected empty documents_provided, got %v", labor.DocumentsProvided)
	}
}

// TestUnknownCategoryDefaults verifies the residual generic variant.
func TestUnknownCategoryDefaults(t *testing.T) {
	resp := NewResponse(catalog.TypeFamilia)
	generic, ok := resp.(*GenericResponse)
	if !ok {
		t.Fatalf("Expected *GenericResponse for familia, got %T", resp)
	}
	if generic.ProcessType() != catalog.TypeFamilia {
		t.Errorf("Expected process type familia, got %q", generic.ProcessType())
	}
	if len(generic.Fields) != 0 {
		t.Errorf("Expected empty generic object, got %v", generic.Fields)
	}

	raw, err := json.Marshal(generic)
	if err != nil {
		t.Fatalf("Failed to marshal generic response: %v", err)
	}
	if string(raw) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", raw)
	}
}

// TestDecodeResponseDispatch verifies decoding picks the variant by category.
func TestDecodeResponseDispatch(t *testing.T) {
	raw := []byte(`{"company_name":"Acme","salary":2500,"specific_claims":["Horas extras","13º salário"]}`)

	resp, err := DecodeResponse(catalog.TypeTrabalhista, raw)
	if err != nil {
		t.Fatalf("Failed to decode labor response: %v", err)
	}

	labor := resp.(*LaborResponse)
	if labor.CompanyName != "Acme" {
		t.Errorf("Expected company_name Acme, got %q", labor.CompanyName)
	}
	if labor.Salary != 2500 {
		t.Errorf("Expected salary 2500, got %v", labor.Salary)
	}
	if len(labor.SpecificClaims) != 2 {
		t.Errorf("Expected 2 claims, got %v", labor.SpecificClaims)
	}
	// Defaults survive when absent from the stored object
	if labor.WeeklyHours != 40 {
		t.Errorf("Expected default weekly_hours to survive decode, got %v", labor.WeeklyHours)
	}

	generic, err := DecodeResponse(catalog.TypeOS, []byte(`{"anything":1}`))
	if err != nil {
		t.Fatalf("Failed to decode generic response: %v", err)
	}
	if g := generic.(*GenericResponse); g.Fields["anything"] != float64(1) {
		t.Errorf("Expected generic field to round-trip, got %v", g.Fields)
	}
}

// TestDecodeScalarListAnswer verifies a historically scalar list answer still
// decodes into a one-element list.
func TestDecodeScalarListAnswer(t *testing.T) {
	raw := []byte(`{"specific_claims":"Horas extras"}`)
	resp, err := DecodeResponse(catalog.TypeTrabalhista, raw)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}

	labor := resp.(*LaborResponse)
	if len(labor.SpecificClaims) != 1 || labor.SpecificClaims[0] != "Horas extras" {
		t.Errorf("Expected single-element claims list, got %v", labor.SpecificClaims)
	}
}

// TestDecodeStringNumericAnswers verifies numeric answers sent as JSON
// strings decode like their number forms.
func TestDecodeStringNumericAnswers(t *testing.T) {
	raw := []byte(`{"salary":"4200.50","weekly_hours":"44","overtime_hours_per_week":"6.5"}`)
	resp, err := DecodeResponse(catalog.TypeTrabalhista, raw)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}

	labor := resp.(*LaborResponse)
	if labor.Salary != 4200.50 {
		t.Errorf("Expected salary 4200.50, got %v", labor.Salary)
	}
	if labor.WeeklyHours != 44 {
		t.Errorf("Expected weekly_hours 44, got %v", labor.WeeklyHours)
	}
	if labor.OvertimeHoursPerWeek != 6.5 {
		t.Errorf("Expected overtime hours 6.5, got %v", labor.OvertimeHoursPerWeek)
	}

	civil, err := DecodeResponse(catalog.TypeCivil, []byte(`{"claim_value":"15000.75"}`))
	if err != nil {
		t.Fatalf("Failed to decode civil response: %v", err)
	}
	if got := civil.(*CivilResponse).ClaimValue; got != 15000.75 {
		t.Errorf("Expected claim_value 15000.75, got %v", got)
	}

	if _, err := DecodeResponse(catalog.TypeTrabalhista, []byte(`{"weekly_hours":"forty"}`)); err == nil {
		t.Error("Expected error for a non-numeric string answer")
	}

	// Marshaling always emits numbers regardless of how the answer arrived.
	out, err := json.Marshal(labor)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	var round map[string]interface{}
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatalf("Failed to re-decode: %v", err)
	}
	if round["weekly_hours"] != float64(44) {
		t.Errorf("Expected weekly_hours as JSON number 44, got %v", round["weekly_hours"])
	}
}

// TestLaborApplyInput covers the labor form's type-specific change handling.
func TestLaborApplyInput(t *testing.T) {
	labor := NewResponse(catalog.TypeTrabalhista).(*LaborResponse)

	labor.ApplyInput("company_name", "Acme Ltda")
	labor.ApplyInput("salary", "3500.50")
	labor.ApplyInput("weekly_hours", "not a number")
	labor.ApplyInput("has_overtime", "true")
	labor.ApplyInput("overtime_hours_per_week", "8")
	labor.ApplyInput("specific_claims", "Horas extras, Férias não pagas , 13º salário")
	labor.ApplyInput("unknown_field", "ignored")

	if labor.CompanyName != "Acme Ltda" {
		t.Errorf("Expected company name applied, got %q", labor.CompanyName)
	}
	if labor.Salary != 3500.50 {
		t.Errorf("Expected salary 3500.50, got %v", labor.Salary)
	}
	if labor.WeeklyHours != 0 {
		t.Errorf("Numeric parse failure should default to 0, got %v", labor.WeeklyHours)
	}
	if !labor.HasOvertime {
		t.Error("Expected has_overtime toggled on")
	}
	if labor.OvertimeHoursPerWeek != 8 {
		t.Errorf("Expected overtime hours 8, got %v", labor.OvertimeHoursPerWeek)
	}
	if len(labor.SpecificClaims) != 3 || labor.SpecificClaims[1] != "Férias não pagas" {
		t.Errorf("Expected trimmed claims list, got %v", labor.SpecificClaims)
	}
}

// TestHasForm verifies form dispatch coverage.
func TestHasForm(t *testing.T) {
	for _, pt := range []catalog.ProcessType{catalog.TypeTrabalhista, catalog.TypeCivil, catalog.TypeCriminal} {
		if !HasForm(pt) {
			t.Errorf("Expected specialized form for %q", pt)
		}
	}
	for _, pt := range []catalog.ProcessType{catalog.TypeJEC, catalog.TypeOutro, catalog.TypeAdmINPI} {
		if HasForm(pt) {
			t.Errorf("Expected no specialized form for %q", pt)
		}
	}
}
