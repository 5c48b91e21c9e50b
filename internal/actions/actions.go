// Package actions implements the server-side form-handling actions behind the
// site's admin area and contact page. Every action resolves to the same
// envelope; nothing an action does can surface as an error to its caller.
package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/aurumtrade/aurum-api/internal/auth"
	"github.com/aurumtrade/aurum-api/internal/models"
	"github.com/aurumtrade/aurum-api/internal/services"
	"github.com/aurumtrade/aurum-api/internal/validation"
	log "github.com/sirupsen/logrus"
)

// Action-specific messages. Failure messages are generic on purpose: the
// underlying error is logged but never exposed.
const (
	msgSignupOK   = "Signup successful."
	msgSignupFail = "Failed to signup."
	msgSigninOK   = "Login successful."
	msgSigninFail = "Failed to login."
	msgCreateOK   = "News created successfully."
	msgCreateFail = "Failed to create news."
	msgEditOK     = "News updated successfully."
	msgEditFail   = "Failed to edit the news."
	msgDeleteOK   = "News deleted successfully."
	msgDeleteFail = "Failed to delete the blog."
	msgQueryOK    = "Query sent successfully."
	msgQueryFail  = "Failed to send the query."
	msgValidation = "Validation failed."
)

// Actions bundles the mutation actions invoked by the site's forms.
// The admin allow-list is injected at construction so the actions carry no
// hidden global state.
type Actions struct {
	allowList []string
	provider  *auth.Provider
	news      services.NewsService
	users     services.UserService
	queries   services.QueryService
}

func New(allowList []string, provider *auth.Provider, news services.NewsService, users services.UserService, queries services.QueryService) *Actions {
	return &Actions{
		allowList: allowList,
		provider:  provider,
		news:      news,
		users:     users,
		queries:   queries,
	}
}

// guarded describes one run of the shared action shape:
// authorize → validate → persist → envelope.
type guarded struct {
	// token is the caller's bearer token; only read when requireAdmin is set.
	token        string
	requireAdmin bool
	// payload is validated against its schema tags before persist runs.
	payload interface{}
	// persist performs the single write. caller is nil for public actions.
	persist func(ctx context.Context, caller *auth.SessionInfo) error
	okMsg   string
	failMsg string
}

// run executes a guarded action. Each gate short-circuits with its envelope;
// persist errors surface the provider's own message when it is an APIError
// and the action's generic failure message otherwise.
func (a *Actions) run(ctx context.Context, g guarded) models.ActionResult {
	var caller *auth.SessionInfo
	if g.requireAdmin {
		session, err := a.provider.GetSession(ctx, g.token)
		if err != nil {
			log.WithError(err).Error("Session lookup failed")
			return models.Fail(g.failMsg)
		}
		if session == nil {
			return models.Fail(models.MsgUnauthorized)
		}
		if session.Role != models.RoleAdmin {
			return models.Fail(models.MsgForbidden)
		}
		caller = session
	}

	if errs := validation.Check(g.payload); errs != nil {
		return models.FailFields(msgValidation, errs)
	}

	if err := g.persist(ctx, caller); err != nil {
		var apiErr *auth.APIError
		if errors.As(err, &apiErr) {
			return models.Fail(apiErr.Message)
		}
		log.WithError(err).Error(g.failMsg)
		return models.Fail(g.failMsg)
	}

	return models.Ok(g.okMsg)
}

// allowListed reports whether the email may register or sign in at all.
// Comparison is case-insensitive on the address as a whole.
func (a *Actions) allowListed(email string) bool {
	for _, allowed := range a.allowList {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}

// Signup registers an allow-listed email with the auth provider and then
// promotes the new user to admin. The second return value is the session
// token for the caller to hand back to the client; it is empty unless the
// envelope reports success.
func (a *Actions) Signup(ctx context.Context, in validation.SignupInput) (models.ActionResult, string) {
	if !a.allowListed(in.Email) {
		return models.Fail(models.MsgNotAdmin), ""
	}

	var token string
	res := a.run(ctx, guarded{
		payload: in,
		persist: func(ctx context.Context, _ *auth.SessionInfo) error {
			t, err := a.provider.SignUpEmail(ctx, auth.SignUpBody{
				Name:     in.Name,
				Email:    in.Email,
				Password: in.Password,
			})
			if err != nil {
				return err
			}
			token = t
			// The provider's signup leaves role at its default; the
			// allow-list gate already passed, so promote immediately.
			return a.users.PromoteToAdmin(in.Email)
		},
		okMsg:   msgSignupOK,
		failMsg: msgSignupFail,
	})
	if !res.Success {
		return res, ""
	}
	return res, token
}

// Signin authenticates an allow-listed email against the auth provider.
func (a *Actions) Signin(ctx context.Context, in validation.SigninInput) (models.ActionResult, string) {
	if !a.allowListed(in.Email) {
		return models.Fail(models.MsgNotAdmin), ""
	}

	var token string
	res := a.run(ctx, guarded{
		payload: in,
		persist: func(ctx context.Context, _ *auth.SessionInfo) error {
			t, err := a.provider.SignInEmail(ctx, auth.SignInBody{
				Email:    in.Email,
				Password: in.Password,
			})
			if err != nil {
				return err
			}
			token = t
			return nil
		},
		okMsg:   msgSigninOK,
		failMsg: msgSigninFail,
	})
	if !res.Success {
		return res, ""
	}
	return res, token
}

// CreateNews inserts a news article authored by the calling admin.
func (a *Actions) CreateNews(ctx context.Context, token string, in validation.CreateNewsInput) models.ActionResult {
	return a.run(ctx, guarded{
		token:        token,
		requireAdmin: true,
		payload:      in,
		persist: func(ctx context.Context, caller *auth.SessionInfo) error {
			_, err := a.news.CreateNews(models.News{
				ID:          models.NewNewsID(),
				Title:       in.Title,
				Description: in.Description,
				Images:      models.StringList(in.Images),
				Tags:        models.StringList(in.Tags),
				AuthorID:    caller.UserID,
			})
			return err
		},
		okMsg:   msgCreateOK,
		failMsg: msgCreateFail,
	})
}

// EditNews updates an article's content fields. The slug is never recomputed.
func (a *Actions) EditNews(ctx context.Context, token string, in validation.EditNewsInput) models.ActionResult {
	return a.run(ctx, guarded{
		token:        token,
		requireAdmin: true,
		payload:      in,
		persist: func(ctx context.Context, _ *auth.SessionInfo) error {
			return a.news.UpdateNews(in.ID, services.NewsUpdate{
				Title:       in.Title,
				Description: in.Description,
				Images:      models.StringList(in.Images),
				Tags:        models.StringList(in.Tags),
			})
		},
		okMsg:   msgEditOK,
		failMsg: msgEditFail,
	})
}

// DeleteNews removes an article by id. Deleting an id that does not exist
// still succeeds: the row is gone either way.
func (a *Actions) DeleteNews(ctx context.Context, token string, in validation.DeleteNewsInput) models.ActionResult {
	return a.run(ctx, guarded{
		token:        token,
		requireAdmin: true,
		payload:      in,
		persist: func(ctx context.Context, _ *auth.SessionInfo) error {
			return a.news.DeleteNews(in.NewsID)
		},
		okMsg:   msgDeleteOK,
		failMsg: msgDeleteFail,
	})
}

// CreateQuery records a contact-form submission. No authorization gate: any
// visitor can send one.
func (a *Actions) CreateQuery(ctx context.Context, in validation.CreateQueryInput) models.ActionResult {
	return a.run(ctx, guarded{
		payload: in,
		persist: func(ctx context.Context, _ *auth.SessionInfo) error {
			_, err := a.queries.CreateQuery(models.Query{
				Name:        in.Name,
				Subject:     in.Subject,
				Email:       in.Email,
				PhoneNumber: in.PhoneNumber,
				Message:     in.Message,
			})
			return err
		},
		okMsg:   msgQueryOK,
		failMsg: msgQueryFail,
	})
}
