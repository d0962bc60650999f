package questionnaire

import (
	"encoding/json"
	"strconv"

	"github.com/legalbridge/legalbridge/internal/catalog"
	"github.com/legalbridge/legalbridge/internal/types"
)

// Response is the saved answer object for one process questionnaire. The
// concrete variant is selected by the process type; categories without a
// specialized form fall into GenericResponse.
type Response interface {
	ProcessType() catalog.ProcessType
}

// LaborResponse is the answer set for trabalhista processes.
type LaborResponse struct {
	EmploymentStartDate  string                 `json:"employment_start_date"`
	EmploymentEndDate    string                 `json:"employment_end_date,omitempty"`
	CompanyName          string                 `json:"company_name"`
	JobTitle             string                 `json:"job_title"`
	Salary               types.FlexFloat64      `json:"salary"`
	WeeklyHours          types.FlexUint64       `json:"weekly_hours"`
	HasOvertime          bool                   `json:"has_overtime"`
	OvertimeHoursPerWeek types.FlexFloat64      `json:"overtime_hours_per_week,omitempty"`
	HasBenefits          bool                   `json:"has_benefits"`
	Benefits             types.FlexList[string] `json:"benefits,omitempty"`
	TerminationReason    string                 `json:"termination_reason,omitempty"`
	HasFormalContract    bool                   `json:"has_formal_contract"`
	SpecificClaims       types.FlexList[string] `json:"specific_claims"`
	DocumentsProvided    types.FlexList[string] `json:"documents_provided"`
	AdditionalNotes      string                 `json:"additional_notes,omitempty"`
}

// ProcessType implements Response.
func (*LaborResponse) ProcessType() catalog.ProcessType { return catalog.TypeTrabalhista }

// CivilResponse is the answer set for civil processes.
type CivilResponse struct {
	IncidentDate             string                 `json:"incident_date"`
	IncidentLocation         string                 `json:"incident_location"`
	ClaimType                string                 `json:"claim_type"`
	OpposingParties          types.FlexList[string] `json:"opposing_parties"`
	ClaimValue               types.FlexFloat64      `json:"claim_value,omitempty"`
	HasPreviousAgreement     bool                   `json:"has_previous_agreement"`
	PreviousAgreementDetails string                 `json:"previous_agreement_details,omitempty"`
	HasDocuments             bool                   `json:"has_documents"`
	DocumentsProvided        types.FlexList[string] `json:"documents_provided"`
	WitnessNames             types.FlexList[string] `json:"witness_names,omitempty"`
	WitnessContacts          types.FlexList[string] `json:"witness_contacts,omitempty"`
	AdditionalNotes          string                 `json:"additional_notes,omitempty"`
}

// ProcessType implements Response.
func (*CivilResponse) ProcessType() catalog.ProcessType { return catalog.TypeCivil }

// CriminalResponse is the answer set for criminal processes.
type CriminalResponse struct {
	OffenseDate                  string                 `json:"offense_date"`
	OffenseLocation              string                 `json:"offense_location"`
	OffenseType                  string                 `json:"offense_type"`
	PoliceReportNumber           string                 `json:"police_report_number,omitempty"`
	PoliceReportDate             string                 `json:"police_report_date,omitempty"`
	HasBeenCharged               bool                   `json:"has_been_charged"`
	ChargeDetails                string                 `json:"charge_details,omitempty"`
	HasCourtDate                 bool                   `json:"has_court_date"`
	CourtDate                    string                 `json:"court_date,omitempty"`
	CourtLocation                string                 `json:"court_location,omitempty"`
	HasPreviousOffenses          bool                   `json:"has_previous_offenses"`
	PreviousOffenses             types.FlexList[string] `json:"previous_offenses,omitempty"`
	HasWitnesses                 bool                   `json:"has_witnesses"`
	WitnessDetails               string                 `json:"witness_details,omitempty"`
	HasLegalRepresentationBefore bool                   `json:"has_legal_representation_before"`
	AdditionalNotes              string                 `json:"additional_notes,omitempty"`
}

// ProcessType implements Response.
func (*CriminalResponse) ProcessType() catalog.ProcessType { return catalog.TypeCriminal }

// GenericResponse is the residual free-form variant for categories without a
// specialized form.
type GenericResponse struct {
	Type   catalog.ProcessType `json:"-"`
	Fields map[string]any      `json:"-"`
}

// ProcessType implements Response.
func (g *GenericResponse) ProcessType() catalog.ProcessType { return g.Type }

// MarshalJSON flattens the generic field map.
func (g *GenericResponse) MarshalJSON() ([]byte, error) {
	if g.Fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(g.Fields)
}

// UnmarshalJSON fills the generic field map.
func (g *GenericResponse) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &g.Fields)
}

// HasForm reports whether a specialized form component exists for the process
// type. Callers render a "no form available" notice for the rest.
func HasForm(pt catalog.ProcessType) bool {
	switch pt {
	case catalog.TypeTrabalhista, catalog.TypeCivil, catalog.TypeCriminal:
		return true
	}
	return false
}

// NewResponse constructs the category default answer object used when no
// saved response exists.
func NewResponse(pt catalog.ProcessType) Response {
	switch pt {
	case catalog.TypeTrabalhista:
		return &LaborResponse{
			WeeklyHours:       40,
			HasFormalContract: true,
			SpecificClaims:    types.FlexList[string]{},
			DocumentsProvided: types.FlexList[string]{},
		}
	case catalog.TypeCivil:
		return &CivilResponse{
			OpposingParties:   types.FlexList[string]{},
			DocumentsProvided: types.FlexList[string]{},
		}
	case catalog.TypeCriminal:
		return &CriminalResponse{}
	default:
		return &GenericResponse{Type: pt, Fields: map[string]any{}}
	}
}

// DecodeResponse dispatches raw stored answer JSON into the variant for the
// process type.
func DecodeResponse(pt catalog.ProcessType, raw []byte) (Response, error) {
	resp := NewResponse(pt)
	if len(raw) == 0 {
		return resp, nil
	}
	if err := json.Unmarshal(raw, resp); err != nil {
		return nil, err
	}
	if g, ok := resp.(*GenericResponse); ok {
		g.Type = pt
	}
	return resp, nil
}

// ApplyInput applies one field-level input to a labor response with the
// type-specific handling the labor form defines: checkbox fields toggle
// booleans, numeric inputs parse to float (0 on parse failure), and
// comma-separated inputs split into list answers. Unknown names are ignored.
func (r *LaborResponse) ApplyInput(name, value string) {
	switch name {
	case "employment_start_date":
		r.EmploymentStartDate = value
	case "employment_end_date":
		r.EmploymentEndDate = value
	case "company_name":
		r.CompanyName = value
	case "job_title":
		r.JobTitle = value
	case "termination_reason":
		r.TerminationReason = value
	case "additional_notes":
		r.AdditionalNotes = value
	case "salary":
		r.Salary = types.FlexFloat64(parseNumber(value))
	case "weekly_hours":
		r.WeeklyHours = types.FlexUint64(parseNumber(value))
	case "overtime_hours_per_week":
		r.OvertimeHoursPerWeek = types.FlexFloat64(parseNumber(value))
	case "has_overtime":
		r.HasOvertime = parseCheckbox(value)
	case "has_benefits":
		r.HasBenefits = parseCheckbox(value)
	case "has_formal_contract":
		r.HasFormalContract = parseCheckbox(value)
	case "specific_claims":
		r.SpecificClaims = types.FlexList[string](ParseList(value))
	case "documents_provided":
		r.DocumentsProvided = types.FlexList[string](ParseList(value))
	case "benefits":
		r.Benefits = types.FlexList[string](ParseList(value))
	}
}

func parseNumber(value string) float64 {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseCheckbox(value string) bool {
	return value == "true" || value == "on" || value == "1"
}
