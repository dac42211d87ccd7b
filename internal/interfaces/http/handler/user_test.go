package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/domain/repository"
	"z-blog-ai-api/internal/infrastructure/messaging"

	"github.com/gin-gonic/gin"
)

// capturePublisher 捕获发布的事件
type capturePublisher struct {
	notifications []*messaging.NotificationMessage
	audits        []*messaging.AuditLogMessage
}

func (p *capturePublisher) PublishNotification(ctx context.Context, event *messaging.NotificationMessage) (string, error) {
	p.notifications = append(p.notifications, event)
	return "1-1", nil
}

func (p *capturePublisher) PublishAuditLog(ctx context.Context, log *messaging.AuditLogMessage) (string, error) {
	p.audits = append(p.audits, log)
	return "1-1", nil
}

// adminUserRepo 管理端用户仓储桩
type adminUserRepo struct {
	repository.UserRepository
	users   map[string]*entity.User
	role    entity.UserRole
	deleted string
}

func (r *adminUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *adminUserRepo) UpdateRole(ctx context.Context, id string, role entity.UserRole) error {
	r.role = role
	return nil
}

func (r *adminUserRepo) Delete(ctx context.Context, id string) error {
	r.deleted = id
	return nil
}

func newUserTestEngine(repo *adminUserRepo, pub *capturePublisher) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewUserHandler(repo, pub)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "admin-1")
		c.Set("role", "admin")
	})
	r.PUT("/v1/admin/users/:id/role", h.UpdateRole)
	r.DELETE("/v1/admin/users/:id", h.Delete)
	return r
}

func TestUpdateRolePublishesAudit(t *testing.T) {
	repo := &adminUserRepo{users: map[string]*entity.User{
		"user-2": {ID: "user-2", Role: entity.UserRoleUser},
	}}
	pub := &capturePublisher{}
	engine := newUserTestEngine(repo, pub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/admin/users/user-2/role",
		strings.NewReader(`{"role":"moderator"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
	}
	if repo.role != entity.UserRoleModerator {
		t.Errorf("expected role moderator persisted, got %s", repo.role)
	}

	if len(pub.audits) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(pub.audits))
	}
	audit := pub.audits[0]
	if audit.Action != "user.role_update" {
		t.Errorf("expected action user.role_update, got %s", audit.Action)
	}
	if audit.ResourceID != "user-2" || audit.UserID != "admin-1" {
		t.Errorf("unexpected audit resource/actor: %s / %s", audit.ResourceID, audit.UserID)
	}
}

func TestDeleteUserPublishesAudit(t *testing.T) {
	repo := &adminUserRepo{users: map[string]*entity.User{
		"user-2": {ID: "user-2", Role: entity.UserRoleUser},
	}}
	pub := &capturePublisher{}
	engine := newUserTestEngine(repo, pub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/users/user-2", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
	}
	if repo.deleted != "user-2" {
		t.Errorf("expected user-2 deleted, got %q", repo.deleted)
	}
	if len(pub.audits) != 1 || pub.audits[0].Action != "user.delete" {
		t.Fatalf("expected one user.delete audit event, got %+v", pub.audits)
	}
}

func TestDeleteSelfForbidden(t *testing.T) {
	repo := &adminUserRepo{users: map[string]*entity.User{
		"admin-1": {ID: "admin-1", Role: entity.UserRoleAdmin},
	}}
	pub := &capturePublisher{}
	engine := newUserTestEngine(repo, pub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/users/admin-1", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for self delete, got %d", w.Code)
	}
	if repo.deleted != "" || len(pub.audits) != 0 {
		t.Errorf("expected no deletion and no audit event")
	}
}
