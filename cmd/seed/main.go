package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/stemsi/der-api/internal/config"
	"github.com/stemsi/der-api/internal/database"
	"github.com/stemsi/der-api/internal/logger"
	"github.com/stemsi/der-api/internal/model"
	"github.com/stemsi/der-api/internal/repository"
	"github.com/stemsi/der-api/internal/service"
)

var studentCount int

func main() {
	rootCmd := &cobra.Command{
		Use:          "seed",
		Short:        "Populate the database with sample institutions, courses and people",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
	rootCmd.Flags().IntVarP(&studentCount, "students", "n", 20, "Number of students to create")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	institutionService := service.NewInstitutionService(repository.NewInstitutionRepository(pool), log)
	courseService := service.NewCourseService(repository.NewCourseRepository(pool), log)
	disciplineService := service.NewDisciplineService(repository.NewDisciplineRepository(pool), log)
	professorService := service.NewProfessorService(repository.NewProfessorRepository(pool), log)
	studentService := service.NewStudentService(repository.NewStudentRepository(pool), log)

	fmt.Println("=== Seeding DER sample data ===")

	inst, err := institutionService.Create(ctx, &model.InstitutionInput{
		Acronym:     ptr("UFDER"),
		Description: ptr("Universidade Federal de Demonstração"),
	})
	if err != nil {
		return fmt.Errorf("create institution: %w", err)
	}
	fmt.Printf("Created institution %d\n", inst.ID)

	// Course types 1 and 2 come from the reference-type migration.
	courses := []struct {
		description string
		typeID      int
	}{
		{"Ciência da Computação", 1},
		{"Matemática", 2},
	}
	for _, c := range courses {
		course, err := courseService.Create(ctx, &model.CourseInput{
			InstitutionID: &inst.ID,
			CourseTypeID:  ptr(c.typeID),
			Description:   ptr(c.description),
		})
		if err != nil {
			return fmt.Errorf("create course %q: %w", c.description, err)
		}
		fmt.Printf("Created course %d (%s)\n", course.ID, c.description)

		for period := 1; period <= 2; period++ {
			_, err := disciplineService.Create(ctx, &model.DisciplineInput{
				CourseID:         &course.ID,
				DisciplineTypeID: ptr(1),
				Acronym:          ptr(fmt.Sprintf("D%d%02d", course.ID, period)),
				Description:      ptr(fmt.Sprintf("%s %d", c.description, period)),
				Period:           ptr(period),
				WorkloadHours:    ptr(60),
			})
			if err != nil {
				return fmt.Errorf("create discipline: %w", err)
			}
		}
	}

	professors := []model.ProfessorInput{
		{Name: ptr("Helena Duarte"), Sex: ptr("F"), MaritalStatus: ptr("casada"), BirthDate: date(1975, 4, 12), Phone: ptr("(61) 99999-0001")},
		{Name: ptr("Rafael Nunes"), Sex: ptr("M"), MaritalStatus: ptr("solteiro"), BirthDate: date(1982, 9, 3)},
	}
	for i := range professors {
		professors[i].InstitutionID = &inst.ID
		p, err := professorService.Create(ctx, &professors[i])
		if err != nil {
			return fmt.Errorf("create professor: %w", err)
		}
		fmt.Printf("Created professor %d (%s)\n", p.ID, *p.Name)
	}

	names := []string{
		"Ana Beatriz", "Bruno Costa", "Carla Mendes", "Diego Alves", "Eduarda Lima",
		"Felipe Rocha", "Gabriela Dias", "Henrique Souza", "Isabela Martins", "João Pedro",
	}

	successCount := 0
	for i := 0; i < studentCount; i++ {
		sex := "m"
		if i%2 == 0 {
			sex = "f"
		}
		_, err := studentService.Create(ctx, &model.StudentInput{
			Name:      ptr(fmt.Sprintf("%s %d", names[i%len(names)], i+1)),
			Sex:       ptr(sex),
			BirthDate: date(2000+i%6, time.Month(i%12+1), i%28+1),
		})
		if err != nil {
			fmt.Printf("Error creating student %d: %v\n", i+1, err)
			continue
		}
		successCount++
		if (i+1)%10 == 0 {
			fmt.Printf("Created %d students...\n", i+1)
		}
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d students.\n", successCount, studentCount)
	return nil
}

func ptr[T any](v T) *T { return &v }

func date(year int, month time.Month, day int) model.Date {
	return model.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}
