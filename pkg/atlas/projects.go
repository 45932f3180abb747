package atlas

import (
	"context"
	"fmt"

	"go.mongodb.org/atlas/mongodbatlas"

	"github.com/wbleonard/pause-inactive-clusters/internal/models"
)

// ListProjects returns every project in scope, walking all result pages.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project

	for page := 1; ; page++ {
		var (
			result *mongodbatlas.Projects
			resp   *mongodbatlas.Response
			err    error
		)
		if c.orgID != "" {
			opts := &mongodbatlas.ProjectsListOptions{
				ListOptions: mongodbatlas.ListOptions{PageNum: page},
			}
			result, resp, err = c.api.Organizations.Projects(ctx, c.orgID, opts)
		} else {
			result, resp, err = c.api.Projects.GetAllProjects(ctx, &mongodbatlas.ListOptions{PageNum: page})
		}
		if err != nil {
			return nil, fmt.Errorf("listing projects (page %d): %w", page, err)
		}

		for _, p := range result.Results {
			projects = append(projects, models.Project{ID: p.ID, Name: p.Name})
		}

		if resp == nil || resp.IsLastPage() {
			break
		}
	}

	return projects, nil
}
