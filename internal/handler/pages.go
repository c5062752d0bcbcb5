package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/accountpro/accountpro/internal/model"
	"github.com/accountpro/accountpro/internal/repository"
	"github.com/accountpro/accountpro/internal/service"
	"github.com/accountpro/accountpro/internal/web"
)

// PageHandler serves the server-rendered HTML pages.
type PageHandler struct {
	service  *service.AccountService
	renderer *web.Renderer
	flash    *web.FlashStore
}

// NewPageHandler creates a new page handler.
func NewPageHandler(svc *service.AccountService, renderer *web.Renderer, flash *web.FlashStore) *PageHandler {
	return &PageHandler{service: svc, renderer: renderer, flash: flash}
}

// page carries the fields every template layout expects.
type page struct {
	Title   string
	Notices []web.Notice
}

type dashboardPage struct {
	page
	Stats          model.Stats
	RecentAccounts []model.Account
}

type accountsPage struct {
	page
	Accounts     []model.Account
	TypeFilter   string
	StatusFilter string
}

type accountDetailPage struct {
	page
	Account model.Account
}

type accountFormPage struct {
	page
	IsEdit bool
	Action string
	Form   model.AccountInput
}

// Dashboard handles GET /.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "dashboard.html", dashboardPage{
		page:           h.page(w, r, "Dashboard"),
		Stats:          h.service.Stats(),
		RecentAccounts: h.service.Recent(5),
	})
}

// ListAccounts handles GET /accounts with optional type/status filters.
func (h *PageHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	typeFilter := r.URL.Query().Get("type")
	statusFilter := r.URL.Query().Get("status")

	h.renderer.Render(w, http.StatusOK, "accounts.html", accountsPage{
		page: h.page(w, r, "Accounts"),
		Accounts: h.service.List(repository.Filter{
			AccountType: typeFilter,
			Status:      statusFilter,
		}),
		TypeFilter:   typeFilter,
		StatusFilter: statusFilter,
	})
}

// ViewAccount handles GET /account/{id}.
func (h *PageHandler) ViewAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.Get(accountID(r))
	if err != nil {
		h.notFoundNotice(w, r)
		return
	}

	h.renderer.Render(w, http.StatusOK, "account_detail.html", accountDetailPage{
		page:    h.page(w, r, account.FullName()),
		Account: account,
	})
}

// NewAccountForm handles GET /account/create.
func (h *PageHandler) NewAccountForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "account_form.html", accountFormPage{
		page:   h.page(w, r, "Create Account"),
		Action: "/account/create",
		Form:   model.AccountInput{Balance: "0"},
	})
}

// CreateAccount handles POST /account/create. Validation failures
// re-render the form with every failed check; success redirects to the
// new account's detail page.
func (h *PageHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	in := formInput(r)

	account, err := h.service.Create(in)
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		p := h.page(w, r, "Create Account")
		p.Notices = appendErrorNotices(p.Notices, vErr.Messages)
		h.renderer.Render(w, http.StatusOK, "account_form.html", accountFormPage{
			page:   p,
			Action: "/account/create",
			Form:   in,
		})
		return
	}

	h.flash.Set(w, web.Notice{
		Message:  fmt.Sprintf("Account created successfully for %s!", account.FullName()),
		Category: web.NoticeSuccess,
	})
	http.Redirect(w, r, fmt.Sprintf("/account/%d", account.ID), http.StatusFound)
}

// EditAccountForm handles GET /account/{id}/edit.
func (h *PageHandler) EditAccountForm(w http.ResponseWriter, r *http.Request) {
	id := accountID(r)
	account, err := h.service.Get(id)
	if err != nil {
		h.notFoundNotice(w, r)
		return
	}

	h.renderer.Render(w, http.StatusOK, "account_form.html", accountFormPage{
		page:   h.page(w, r, "Edit Account"),
		IsEdit: true,
		Action: fmt.Sprintf("/account/%d/edit", id),
		Form: model.AccountInput{
			FirstName:   account.FirstName,
			LastName:    account.LastName,
			Email:       account.Email,
			AccountType: string(account.AccountType),
			Department:  account.Department,
			Status:      string(account.Status),
			Balance:     account.Balance.StringFixed(2),
		},
	})
}

// EditAccount handles POST /account/{id}/edit.
func (h *PageHandler) EditAccount(w http.ResponseWriter, r *http.Request) {
	id := accountID(r)
	in := formInput(r)

	account, err := h.service.Update(id, in)
	if errors.Is(err, repository.ErrAccountNotFound) {
		h.notFoundNotice(w, r)
		return
	}

	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		p := h.page(w, r, "Edit Account")
		p.Notices = appendErrorNotices(p.Notices, vErr.Messages)
		h.renderer.Render(w, http.StatusOK, "account_form.html", accountFormPage{
			page:   p,
			IsEdit: true,
			Action: fmt.Sprintf("/account/%d/edit", id),
			Form:   in,
		})
		return
	}

	h.flash.Set(w, web.Notice{
		Message:  fmt.Sprintf("Account updated successfully for %s!", account.FullName()),
		Category: web.NoticeSuccess,
	})
	http.Redirect(w, r, fmt.Sprintf("/account/%d", id), http.StatusFound)
}

// DeleteAccount handles POST /account/{id}/delete.
func (h *PageHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.Delete(accountID(r))
	if err != nil {
		h.notFoundNotice(w, r)
		return
	}

	h.flash.Set(w, web.Notice{
		Message:  fmt.Sprintf("Account for %s has been deleted successfully", account.FullName()),
		Category: web.NoticeSuccess,
	})
	http.Redirect(w, r, "/accounts", http.StatusFound)
}

// NotFound renders the 404 page for unmatched routes.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.Error(w, http.StatusNotFound, "Page not found")
}

func (h *PageHandler) page(w http.ResponseWriter, r *http.Request, title string) page {
	return page{Title: title, Notices: h.flash.Pop(w, r)}
}

func (h *PageHandler) notFoundNotice(w http.ResponseWriter, r *http.Request) {
	h.flash.Set(w, web.Notice{Message: "Account not found", Category: web.NoticeError})
	http.Redirect(w, r, "/accounts", http.StatusFound)
}

// accountID extracts the numeric id route parameter. The routes
// constrain {id} to digits, so a parse failure cannot happen for
// requests that reached the handler.
func accountID(r *http.Request) int {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	return id
}

// formInput collects the raw form fields. A missing balance field
// defaults to "0"; a present-but-empty one stays empty and fails
// validation.
func formInput(r *http.Request) model.AccountInput {
	_ = r.ParseForm()

	in := model.AccountInput{
		FirstName:   r.PostForm.Get("first_name"),
		LastName:    r.PostForm.Get("last_name"),
		Email:       r.PostForm.Get("email"),
		AccountType: r.PostForm.Get("account_type"),
		Department:  r.PostForm.Get("department"),
		Status:      r.PostForm.Get("status"),
		Balance:     "0",
	}
	if v, ok := r.PostForm["balance"]; ok && len(v) > 0 {
		in.Balance = v[0]
	}
	return in
}

func appendErrorNotices(notices []web.Notice, messages []string) []web.Notice {
	for _, m := range messages {
		notices = append(notices, web.Notice{Message: m, Category: web.NoticeError})
	}
	return notices
}
