// Integration tests exercising the service layer against a real MySQL
// dialect: JSON column round trips, unique indexes, and the index-hinted
// listing path that sqlite unit tests never reach.

package integration

import (
	"errors"
	"testing"

	"github.com/legalbridge/legalbridge/internal/catalog"
	"github.com/legalbridge/legalbridge/internal/database"
	"github.com/legalbridge/legalbridge/internal/models"
	"github.com/legalbridge/legalbridge/internal/questionnaire"
	"github.com/legalbridge/legalbridge/internal/services"
	"github.com/legalbridge/legalbridge/tests/helpers"
)

func TestMySQLServiceStack(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	mysql := helpers.StartMySQL(t)
	cfg := mysql.Config()

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	t.Run("ProcessLifecycle", func(t *testing.T) {
		process, err := services.CreateProcess(db, "lawyer-1", &services.ProcessInput{
			Title:       "Reclamação trabalhista",
			ProcessType: "trabalhista",
		})
		if err != nil {
			t.Fatalf("Failed to create process: %v", err)
		}

		// The MySQL path goes through the index hint clause.
		processes, err := services.ListProcesses(db, "lawyer-1")
		if err != nil {
			t.Fatalf("Failed to list processes: %v", err)
		}
		if len(processes) != 1 || processes[0].ID != process.ID {
			t.Errorf("Unexpected listing: %+v", processes)
		}

		// The unique index is the collision arbiter.
		dup := models.Process{
			ProcessKey:  process.ProcessKey,
			Title:       "Colliding case",
			ProcessType: "trabalhista",
			Status:      "active",
			LawyerID:    "lawyer-1",
		}
		if err := db.Create(&dup).Error; err == nil {
			t.Error("Expected duplicate process_key to be rejected")
		}
	})

	t.Run("QuestionnaireJSONRoundTrip", func(t *testing.T) {
		process, err := services.CreateProcess(db, "lawyer-2", &services.ProcessInput{
			Title:       "Labor case",
			ProcessType: "trabalhista",
		})
		if err != nil {
			t.Fatalf("Failed to create process: %v", err)
		}

		labor := questionnaire.NewResponse(catalog.TypeTrabalhista).(*questionnaire.LaborResponse)
		labor.CompanyName = "Acme Ltda"
		labor.ApplyInput("specific_claims", "horas extras, FGTS")

		if _, err := services.SaveQuestionnaire(db, process, labor); err != nil {
			t.Fatalf("Failed to save questionnaire: %v", err)
		}

		answers, err := services.QuestionnaireByProcess(db, process)
		if err != nil {
			t.Fatalf("Failed to reload questionnaire: %v", err)
		}
		got := answers.Data.(*questionnaire.LaborResponse)
		if got.CompanyName != "Acme Ltda" || len(got.SpecificClaims) != 2 {
			t.Errorf("JSON column round trip lost data: %+v", got)
		}
	})

	t.Run("TemplateUniquePerType", func(t *testing.T) {
		template := questionnaire.NewTemplate(catalog.TypeCivil)
		template.Fields = append(template.Fields, questionnaire.NewField(questionnaire.FieldText))

		saved, err := services.SaveTemplate(db, template)
		if err != nil {
			t.Fatalf("Failed to save template: %v", err)
		}

		// A second no-id save for the same type must hit the unique index.
		second := questionnaire.NewTemplate(catalog.TypeCivil)
		second.Fields = append(second.Fields, questionnaire.NewField(questionnaire.FieldDate))
		if _, err := services.SaveTemplate(db, second); !errors.Is(err, services.ErrConflict) {
			t.Errorf("Expected ErrConflict for duplicate template type, got %v", err)
		}

		// An id-carrying save updates the existing row.
		saved.Title = "Atualizado"
		if _, err := services.SaveTemplate(db, saved); err != nil {
			t.Fatalf("Failed to update template: %v", err)
		}
		loaded, err := services.TemplateByProcessType(db, catalog.TypeCivil)
		if err != nil {
			t.Fatalf("Failed to reload template: %v", err)
		}
		if loaded.Title != "Atualizado" {
			t.Errorf("Expected updated title, got %q", loaded.Title)
		}
	})
}
