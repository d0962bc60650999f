// Package catalog is the single source of truth for the fixed process type
// and status vocabularies and their display labels. Every component that
// needs a label or a grouping reads it from here.
package catalog

// ProcessType is one of the fixed legal-matter classifications.
type ProcessType string

const (
	TypeTrabalhista        ProcessType = "trabalhista"
	TypeCivil              ProcessType = "civil"
	TypeJEC                ProcessType = "jec"
	TypeFamilia            ProcessType = "familia"
	TypeOS                 ProcessType = "os"
	TypeCriminal           ProcessType = "criminal"
	TypeJECRIM             ProcessType = "jecrim"
	TypeTributario         ProcessType = "tributario"
	TypeFazendario         ProcessType = "fazendario"
	TypeFederalCivil       ProcessType = "federal_civil"
	TypeFederalJEC         ProcessType = "federal_jec"
	TypeFederalCriminal    ProcessType = "federal_criminal"
	TypeFederalJECRIM      ProcessType = "federal_jecrim"
	TypeFederalTributario  ProcessType = "federal_tributario"
	TypeFederalFazendario  ProcessType = "federal_fazendario"
	TypeAdmINSS            ProcessType = "adm_inss"
	TypeAdmMunicipal       ProcessType = "adm_municipal"
	TypeAdmEstadual        ProcessType = "adm_estadual"
	TypeAdmFederal         ProcessType = "adm_federal"
	TypeAdmCartorio        ProcessType = "adm_cartorio"
	TypeAdmINPI            ProcessType = "adm_inpi"
	TypeOutro              ProcessType = "outro"
)

// Status is a process lifecycle state. StatusArchived is accepted on
// create/edit but is deliberately absent from the dashboard buckets.
type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusPreFiling Status = "pre-filing"
	StatusClosed    Status = "closed"
	StatusArchived  Status = "archived"
)

var processTypeLabels = map[ProcessType]string{
	TypeTrabalhista:       "Trabalhista",
	TypeCivil:             "Civil",
	TypeJEC:               "JEC",
	TypeFamilia:           "Família",
	TypeOS:                "OS",
	TypeCriminal:          "Criminal",
	TypeJECRIM:            "JECRIM",
	TypeTributario:        "Tributário",
	TypeFazendario:        "Fazendário",
	TypeFederalCivil:      "Federal - Civil",
	TypeFederalJEC:        "Federal - JEC",
	TypeFederalCriminal:   "Federal - Criminal",
	TypeFederalJECRIM:     "Federal - JECRIM",
	TypeFederalTributario: "Federal - Tributário",
	TypeFederalFazendario: "Federal - Fazendário",
	TypeAdmINSS:           "INSS",
	TypeAdmMunicipal:      "Municipal",
	TypeAdmEstadual:       "Estadual",
	TypeAdmFederal:        "Federal",
	TypeAdmCartorio:       "Cartório",
	TypeAdmINPI:           "INPI",
	TypeOutro:             "Outro",
}

var statusLabels = map[Status]string{
	StatusActive:    "Ativo",
	StatusPending:   "Pendente",
	StatusPreFiling: "Pré-Distribuição",
	StatusClosed:    "Encerrado",
	StatusArchived:  "Arquivado",
}

// processTypes preserves the canonical declaration order for listings.
var processTypes = []ProcessType{
	TypeTrabalhista, TypeCivil, TypeJEC, TypeFamilia, TypeOS,
	TypeCriminal, TypeJECRIM, TypeTributario, TypeFazendario,
	TypeFederalCivil, TypeFederalJEC, TypeFederalCriminal,
	TypeFederalJECRIM, TypeFederalTributario, TypeFederalFazendario,
	TypeAdmINSS, TypeAdmMunicipal, TypeAdmEstadual, TypeAdmFederal,
	TypeAdmCartorio, TypeAdmINPI, TypeOutro,
}

var statuses = []Status{
	StatusActive, StatusPending, StatusPreFiling, StatusClosed, StatusArchived,
}

// Group is a navigation grouping of process types under a display heading.
type Group struct {
	Label string        `json:"label"`
	Types []ProcessType `json:"types"`
}

var groups = []Group{
	{Label: "Trabalhista", Types: []ProcessType{TypeTrabalhista}},
	{Label: "Civil", Types: []ProcessType{TypeCivil, TypeJEC, TypeFamilia, TypeOS}},
	{Label: "Criminal", Types: []ProcessType{TypeCriminal, TypeJECRIM}},
	{Label: "Tributário e Fazendário", Types: []ProcessType{TypeTributario, TypeFazendario}},
	{Label: "Federal", Types: []ProcessType{
		TypeFederalCivil, TypeFederalJEC, TypeFederalCriminal,
		TypeFederalJECRIM, TypeFederalTributario, TypeFederalFazendario,
	}},
	{Label: "Administrativo", Types: []ProcessType{
		TypeAdmINSS, TypeAdmMunicipal, TypeAdmEstadual,
		TypeAdmFederal, TypeAdmCartorio, TypeAdmINPI,
	}},
	{Label: "Outro", Types: []ProcessType{TypeOutro}},
}

// ValidProcessType reports whether pt is one of the fixed classifications.
func ValidProcessType(pt ProcessType) bool {
	_, ok := processTypeLabels[pt]
	return ok
}

// ValidStatus reports whether s is a known lifecycle status.
func ValidStatus(s Status) bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label for a process type, falling back to the
// residual "Outro" label for unknown values.
func Label(pt ProcessType) string {
	if label, ok := processTypeLabels[pt]; ok {
		return label
	}
	return processTypeLabels[TypeOutro]
}

// StatusLabel returns the display label for a status, or the raw value when
// unknown.
func StatusLabel(s Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ProcessTypes returns the classifications in canonical order.
func ProcessTypes() []ProcessType {
	out := make([]ProcessType, len(processTypes))
	copy(out, processTypes)
	return out
}

// Statuses returns the lifecycle statuses in canonical order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// Groups returns a deep copy of the navigation groups so callers cannot
// mutate the shared tables.
func Groups() []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		types := make([]ProcessType, len(g.Types))
		copy(types, g.Types)
		out[i] = Group{Label: g.Label, Types: types}
	}
	return out
}
