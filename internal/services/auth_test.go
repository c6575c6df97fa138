package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/rewire-backend/internal/apperr"
	"github.com/yungbote/rewire-backend/internal/repos"
	"github.com/yungbote/rewire-backend/internal/requestdata"
	"github.com/yungbote/rewire-backend/internal/types"
)

func newAuthFixture(t *testing.T) (AuthService, repos.UserRepo) {
	t.Helper()
	gdb := newTestDB(t)
	if err := gdb.AutoMigrate(&types.UserToken{}); err != nil {
		t.Fatalf("auto migrate tokens: %v", err)
	}
	log := newTestLogger(t)
	userRepo := repos.NewUserRepo(gdb, log)
	userTokenRepo := repos.NewUserTokenRepo(gdb, log)
	authService := NewAuthService(gdb, log, userRepo, userTokenRepo, "test-secret", time.Hour, 24*time.Hour)
	return authService, userRepo
}

func registerTestUser(t *testing.T, authService AuthService) *types.User {
	t.Helper()
	user := &types.User{
		Email:     "alice@example.com",
		Password:  "s3cret-password",
		UserName:  "alice",
		FirstName: "Alice",
		LastName:  "Smith",
	}
	if err := authService.RegisterUser(context.Background(), user); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	return user
}

func TestRegisterUserHashesPassword(t *testing.T) {
	authService, userRepo := newAuthFixture(t)
	user := registerTestUser(t, authService)

	stored, err := userRepo.GetByEmails(context.Background(), nil, []string{"alice@example.com"})
	if err != nil || len(stored) != 1 {
		t.Fatalf("fetch registered user: %v (%d rows)", err, len(stored))
	}
	if stored[0].Password == "s3cret-password" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored[0].Password), []byte("s3cret-password")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatalf("user id not assigned")
	}
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	authService, _ := newAuthFixture(t)
	registerTestUser(t, authService)

	dup := &types.User{
		Email:     "alice@example.com",
		Password:  "another-password",
		UserName:  "alice2",
		FirstName: "Alice",
		LastName:  "Smith",
	}
	if err := authService.RegisterUser(context.Background(), dup); !apperr.IsValidation(err) {
		t.Fatalf("duplicate email: want ValidationError, got %v", err)
	}
}

func TestLoginUser(t *testing.T) {
	authService, _ := newAuthFixture(t)
	registerTestUser(t, authService)

	accessToken, refreshToken, err := authService.LoginUser(context.Background(), "alice@example.com", "s3cret-password")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatalf("empty tokens: access=%q refresh=%q", accessToken, refreshToken)
	}

	if _, _, err := authService.LoginUser(context.Background(), "alice@example.com", "wrong-password"); err != apperr.ErrUnauthorized {
		t.Fatalf("wrong password: want ErrUnauthorized, got %v", err)
	}
	if _, _, err := authService.LoginUser(context.Background(), "nobody@example.com", "s3cret-password"); err != apperr.ErrUnauthorized {
		t.Fatalf("unknown email: want ErrUnauthorized, got %v", err)
	}
}

func TestSetContextFromToken(t *testing.T) {
	authService, _ := newAuthFixture(t)
	user := registerTestUser(t, authService)

	accessToken, refreshToken, err := authService.LoginUser(context.Background(), "alice@example.com", "s3cret-password")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	ctx, err := authService.SetContextFromToken(context.Background(), accessToken)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		t.Fatalf("request data not attached")
	}
	if rd.UserID != user.ID {
		t.Fatalf("user id: want=%s got=%s", user.ID, rd.UserID)
	}
	if rd.RefreshToken != refreshToken {
		t.Fatalf("refresh token not resolved from access token")
	}

	if _, err := authService.SetContextFromToken(context.Background(), "not-a-jwt"); err == nil {
		t.Fatalf("garbage token accepted")
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	authService, _ := newAuthFixture(t)
	registerTestUser(t, authService)

	_, refreshToken, err := authService.LoginUser(context.Background(), "alice@example.com", "s3cret-password")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{RefreshToken: refreshToken})
	newAccess, newRefresh, err := authService.RefreshUser(ctx)
	if err != nil {
		t.Fatalf("RefreshUser: %v", err)
	}
	if newAccess == "" || newRefresh == "" || newRefresh == refreshToken {
		t.Fatalf("tokens not rotated: access=%q refresh=%q", newAccess, newRefresh)
	}

	// the consumed refresh token is dead
	if _, _, err := authService.RefreshUser(ctx); err != apperr.ErrUnauthorized {
		t.Fatalf("reused refresh token: want ErrUnauthorized, got %v", err)
	}
}

func TestLogoutInvalidatesAccessToken(t *testing.T) {
	authService, _ := newAuthFixture(t)
	registerTestUser(t, authService)

	accessToken, _, err := authService.LoginUser(context.Background(), "alice@example.com", "s3cret-password")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{TokenString: accessToken})
	if err := authService.LogoutUser(ctx); err != nil {
		t.Fatalf("LogoutUser: %v", err)
	}

	// parsing still succeeds but the refresh token can no longer be resolved
	ctxAfter, err := authService.SetContextFromToken(context.Background(), accessToken)
	if err != nil {
		t.Fatalf("SetContextFromToken after logout: %v", err)
	}
	rd := requestdata.GetRequestData(ctxAfter)
	if rd == nil || rd.RefreshToken != "" {
		t.Fatalf("refresh token survives logout: %+v", rd)
	}
}
