package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/phoenix-pm/phoenix/internal/app"
	"github.com/phoenix-pm/phoenix/internal/database"
	"github.com/phoenix-pm/phoenix/internal/models"
	tasksvc "github.com/phoenix-pm/phoenix/internal/services/task"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the local project with sample tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := database.InitDB(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		a, err := app.New(ctx, db)
		if err != nil {
			db.Close()
			return err
		}
		defer a.Close()

		workspaces, err := a.Repo.GetAllWorkspaces(ctx)
		if err != nil || len(workspaces) == 0 {
			return fmt.Errorf("no workspace found")
		}
		projects, err := a.Repo.GetProjectsByWorkspace(ctx, workspaces[0].ID)
		if err != nil || len(projects) == 0 {
			return fmt.Errorf("no project found")
		}
		project := projects[0]

		sections, err := a.Sections.ListByProject(ctx, project.ID)
		if err != nil {
			return err
		}
		if len(sections) == 0 {
			return fmt.Errorf("project has no sections")
		}
		sectionByName := make(map[string]string, len(sections))
		for _, s := range sections {
			sectionByName[s.Name] = s.ID
		}
		pick := func(name string) string {
			if id, ok := sectionByName[name]; ok {
				return id
			}
			return sections[0].ID
		}

		if _, err := a.Tasks.LoadBoard(ctx, project.ID); err != nil {
			return err
		}

		due := time.Now().AddDate(0, 0, 7)
		samples := []tasksvc.CreateTaskRequest{
			{
				ProjectID:   project.ID,
				Summary:     "Sketch the onboarding flow",
				Description: "Cover the **empty state** and the first-task prompt.\n\n- [ ] wireframes\n- [ ] copy review",
				SectionID:   pick("To Do"),
				Priority:    "high",
				Estimation:  "large",
				Tags:        []string{"design", "onboarding"},
				DueDate:     &due,
			},
			{
				ProjectID:  project.ID,
				Summary:    "Fix section reordering off-by-one",
				SectionID:  pick("In Progress"),
				Status:     models.StatusInProgress,
				Priority:   "medium",
				Estimation: "small",
				Health:     "at_risk",
				Tags:       []string{"bug"},
			},
			{
				ProjectID:  project.ID,
				Summary:    "Write the release announcement",
				SectionID:  pick("To Do"),
				Priority:   "low",
				Estimation: "xs",
				Tags:       []string{"docs", "marketing", "release"},
			},
			{
				ProjectID: project.ID,
				Summary:   "Set up the project repository",
				SectionID: pick("Done"),
				Status:    models.StatusCompleted,
			},
		}

		for i := range samples {
			samples[i].CreatedBy = a.User.ID
			task, err := a.Tasks.Create(ctx, samples[i])
			if err != nil {
				return fmt.Errorf("failed to create sample task: %w", err)
			}
			fmt.Printf("created task %q\n", task.Summary)

			if i == 0 {
				comment := &models.Comment{
					ID:       uuid.NewString(),
					TaskID:   task.ID,
					Body:     "Marketing wants a look before this ships.",
					AuthorID: a.User.ID,
				}
				if err := a.Repo.CreateComment(ctx, comment); err != nil {
					return fmt.Errorf("failed to create sample comment: %w", err)
				}
			}
		}

		fmt.Printf("seeded %d tasks into %q\n", len(samples), project.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
