package seed

import (
	"context"
	_ "embed"
	"time"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/iota-uz/iota-actions/modules/actions/domain/entities/action"
	"github.com/iota-uz/iota-actions/modules/actions/infrastructure/persistence"
	"github.com/iota-uz/iota-actions/modules/actions/services"
	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/composables"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type Fixtures struct {
	Statuses []struct {
		Slug string `yaml:"slug"`
		Name string `yaml:"name"`
	} `yaml:"statuses"`
	Processes []struct {
		Code        string `yaml:"code"`
		Description string `yaml:"description"`
	} `yaml:"processes"`
	Businesses []struct {
		Key  string `yaml:"key"`
		Name string `yaml:"name"`
	} `yaml:"businesses"`
	Users []struct {
		Key       string `yaml:"key"`
		FirstName string `yaml:"first_name"`
		LastName  string `yaml:"last_name"`
		Picture   string `yaml:"picture"`
	} `yaml:"users"`
	Actions []struct {
		Business         string `yaml:"business"`
		Process          string `yaml:"process"`
		Description      string `yaml:"description"`
		DueInDays        int    `yaml:"due_in_days"`
		CompletedDaysAgo *int   `yaml:"completed_days_ago"`
		Status           string `yaml:"status"`
		Assignee         string `yaml:"assignee"`
	} `yaml:"actions"`
	Repeat int `yaml:"repeat"`
}

func LoadFixtures(raw []byte) (*Fixtures, error) {
	var fx Fixtures
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, errors.Wrap(err, "parse fixtures")
	}
	if fx.Repeat < 1 {
		fx.Repeat = 1
	}
	return &fx, nil
}

type ReferenceWriter interface {
	UpsertStatus(ctx context.Context, s action.Status) error
	UpsertProcess(ctx context.Context, p action.Process) error
	CreateBusiness(ctx context.Context, b *action.Business) error
	CreateUser(ctx context.Context, u *action.User) error
}

type ActionWriter interface {
	Create(ctx context.Context, a *action.Action) error
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// Apply writes the reference records first and then every action,
// resolving business and assignee keys to the generated ids.
func Apply(ctx context.Context, fx *Fixtures, refs ReferenceWriter, writer ActionWriter, now time.Time) (int, error) {
	for _, s := range fx.Statuses {
		if err := refs.UpsertStatus(ctx, action.Status{Slug: s.Slug, Name: s.Name}); err != nil {
			return 0, err
		}
	}
	for _, p := range fx.Processes {
		if err := refs.UpsertProcess(ctx, action.Process{Code: p.Code, Description: p.Description}); err != nil {
			return 0, err
		}
	}

	businesses := make(map[string]int64, len(fx.Businesses))
	for _, b := range fx.Businesses {
		entity := &action.Business{Name: optional(b.Name)}
		if err := refs.CreateBusiness(ctx, entity); err != nil {
			return 0, err
		}
		businesses[b.Key] = entity.ID
	}

	users := make(map[string]int64, len(fx.Users))
	for _, u := range fx.Users {
		entity := &action.User{
			FirstName:              optional(u.FirstName),
			LastName:               optional(u.LastName),
			ProfilePictureFilename: optional(u.Picture),
		}
		if err := refs.CreateUser(ctx, entity); err != nil {
			return 0, err
		}
		users[u.Key] = entity.ID
	}

	created := 0
	for round := 0; round < fx.Repeat; round++ {
		shift := time.Duration(round) * 7 * 24 * time.Hour
		for _, a := range fx.Actions {
			entity := &action.Action{
				Process:     optional(a.Process),
				Description: a.Description,
				DueAt:       now.AddDate(0, 0, a.DueInDays).Add(shift),
				StatusSlug:  a.Status,
			}
			if a.Business != "" {
				id, ok := businesses[a.Business]
				if !ok {
					return created, errors.Errorf("unknown business %q", a.Business)
				}
				entity.BusinessID = &id
			}
			if a.Assignee != "" {
				id, ok := users[a.Assignee]
				if !ok {
					return created, errors.Errorf("unknown assignee %q", a.Assignee)
				}
				entity.AssignedUserID = &id
			}
			if a.CompletedDaysAgo != nil {
				completedAt := now.AddDate(0, 0, -*a.CompletedDaysAgo).Add(shift)
				entity.CompletedAt = &completedAt
			}
			if err := writer.Create(ctx, entity); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// CreateActions seeds sample data once; it is a no-op when actions already exist.
func CreateActions(ctx context.Context, app application.Application) error {
	logger := app.Logger()
	fx, err := LoadFixtures(fixturesYAML)
	if err != nil {
		return err
	}

	return composables.InTx(ctx, func(txCtx context.Context) error {
		existing, err := persistence.NewActionRepository().Count(txCtx, nil)
		if err != nil {
			return err
		}
		if existing > 0 {
			logger.Infof("Actions already seeded (%d rows)", existing)
			return nil
		}
		svc := app.Service(services.ActionsService{}).(*services.ActionsService)
		created, err := Apply(txCtx, fx, persistence.NewReferenceRepository(), svc, time.Now())
		if err != nil {
			return err
		}
		logger.Infof("Seeded %d actions", created)
		return nil
	})
}
