package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"campushub/internal/common"
	"campushub/internal/server/auth"
	"campushub/internal/server/config"
	"campushub/internal/server/models"
	"campushub/internal/server/repositories/repomanager"
)

func newUserService(t *testing.T, db *sql.DB, rm repomanager.RepositoryManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		ResetTokenValidityDuration:   time.Hour,
	}
	return NewUserService(db, rm, cfg)
}

func TestRegister_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{users: &fakeUsersRepo{}}
	s := newUserService(t, db, rm)

	u, err := s.Register(context.Background(), "Alice@Example.COM", "alice", "Alice A.", "correct horse")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if u.Role != models.RoleMember {
		t.Fatalf("new users must be members, got %q", u.Role)
	}
	if !auth.CheckPassword(u.PasswordHash, "correct horse") {
		t.Fatalf("stored hash does not verify the password")
	}
}

func TestRegister_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := newUserService(t, db, &fakeRepoManager{users: &fakeUsersRepo{}})

	cases := []struct {
		name     string
		email    string
		userName string
		password string
	}{
		{"bad email", "not-an-email", "bob", "longenough"},
		{"empty email", "", "bob", "longenough"},
		{"empty username", "bob@campus.edu", "", "longenough"},
		{"short password", "bob@campus.edu", "bob", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tc.email, tc.userName, "", tc.password)
			if !errors.Is(err, common.ErrorValidation) {
				t.Fatalf("want ErrorValidation, got %v", err)
			}
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{users: &fakeUsersRepo{createErr: common.ErrorAlreadyExists}}
	s := newUserService(t, db, rm)

	_, err := s.Register(context.Background(), "dup@campus.edu", "dup", "", "longenough")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestLogin_Flows(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hash, err := auth.HashPassword("opensesame")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	rmOK := &fakeRepoManager{
		users:   &fakeUsersRepo{byEmailOut: &models.User{ID: "u1", PasswordHash: hash}},
		refresh: &fakeRefreshRepo{},
	}
	s := newUserService(t, db, rmOK)
	pair, err := s.Login(context.Background(), "alice@campus.edu", "opensesame")
	if err != nil {
		t.Fatalf("Login ok: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("empty tokens: %+v", pair)
	}

	_, err = s.Login(context.Background(), "alice@campus.edu", "wrong")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("wrong password: want ErrorUnauthorized, got %v", err)
	}

	rmNF := &fakeRepoManager{users: &fakeUsersRepo{byEmailErr: common.ErrorNotFound}}
	s2 := newUserService(t, db, rmNF)
	_, err = s2.Login(context.Background(), "ghost@campus.edu", "x")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("unknown user: want ErrorUnauthorized, got %v", err)
	}

	rmErr := &fakeRepoManager{users: &fakeUsersRepo{byEmailErr: errBoom{}}}
	s3 := newUserService(t, db, rmErr)
	_, err = s3.Login(context.Background(), "x@campus.edu", "x")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("repo failure: want ErrorInternal, got %v", err)
	}
}

func TestRefreshToken_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		refresh: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(10 * time.Minute)},
		},
	}
	s := newUserService(t, db, rm)

	pair, err := s.RefreshToken(context.Background(), "refresh-xyz")
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("empty tokens: %+v", pair)
	}
	if rm.refresh.deletedToken != "refresh-xyz" {
		t.Fatalf("old token not rotated out, deleted=%q", rm.refresh.deletedToken)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRefreshToken_Expired(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		refresh: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(-1 * time.Minute)},
		},
	}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if !errors.Is(err, common.ErrRefreshTokenExpired) {
		t.Fatalf("want ErrRefreshTokenExpired, got %v", err)
	}
}

func TestRefreshToken_Unknown(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{refresh: &fakeRefreshRepo{findErr: common.ErrorNotFound}}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "never-issued")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("unknown token: want ErrorUnauthorized, got %v", err)
	}
}

func TestRefreshToken_FindErr(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{refresh: &fakeRefreshRepo{findErr: errBoom{}}}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error searching refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped find error, got %v", err)
	}
}

func TestRefreshToken_DeleteErr(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		refresh: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(10 * time.Minute)},
			delErr:  errBoom{},
		},
	}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error deleting refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped delete error, got %v", err)
	}
}

func TestRequestPasswordReset_Flows(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		users: &fakeUsersRepo{byEmailOut: &models.User{ID: "u1"}},
		reset: &fakeResetRepo{},
	}
	s := newUserService(t, db, rm)

	token, err := s.RequestPasswordReset(context.Background(), "alice@campus.edu")
	if err != nil {
		t.Fatalf("RequestPasswordReset error: %v", err)
	}
	if token == "" || token != rm.reset.createdToken {
		t.Fatalf("token not persisted: returned=%q stored=%q", token, rm.reset.createdToken)
	}

	rmNF := &fakeRepoManager{users: &fakeUsersRepo{byEmailErr: common.ErrorNotFound}}
	s2 := newUserService(t, db, rmNF)
	_, err = s2.RequestPasswordReset(context.Background(), "ghost@campus.edu")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestConfirmPasswordReset_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		users: &fakeUsersRepo{},
		reset: &fakeResetRepo{
			findOut: &models.PasswordResetToken{UserID: "u1", Token: "tkn", Expires: time.Now().Add(time.Hour)},
		},
	}
	s := newUserService(t, db, rm)

	if err := s.ConfirmPasswordReset(context.Background(), "tkn", "newpassword"); err != nil {
		t.Fatalf("ConfirmPasswordReset error: %v", err)
	}
	if rm.users.updatedFor != "u1" {
		t.Fatalf("password updated for wrong user: %q", rm.users.updatedFor)
	}
	if !auth.CheckPassword(rm.users.updatedHash, "newpassword") {
		t.Fatalf("stored hash does not verify the new password")
	}
	if rm.reset.deletedToken != "tkn" {
		t.Fatalf("reset token not consumed, deleted=%q", rm.reset.deletedToken)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestConfirmPasswordReset_ExpiredAndInvalid(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rmExp := &fakeRepoManager{
		reset: &fakeResetRepo{
			findOut: &models.PasswordResetToken{UserID: "u1", Expires: time.Now().Add(-time.Minute)},
		},
	}
	s := newUserService(t, db, rmExp)
	err := s.ConfirmPasswordReset(context.Background(), "tkn", "newpassword")
	if !errors.Is(err, common.ErrResetTokenExpired) {
		t.Fatalf("want ErrResetTokenExpired, got %v", err)
	}

	rmNF := &fakeRepoManager{reset: &fakeResetRepo{findErr: common.ErrorNotFound}}
	s2 := newUserService(t, db, rmNF)
	err = s2.ConfirmPasswordReset(context.Background(), "bad", "newpassword")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestSetInterests_Normalizes(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{users: &fakeUsersRepo{}}
	s := newUserService(t, db, rm)

	err := s.SetInterests(context.Background(), "u1", []string{" Music ", "music", "", "Sports"})
	if err != nil {
		t.Fatalf("SetInterests error: %v", err)
	}
	want := []string{"music", "sports"}
	if len(rm.users.setTags) != len(want) {
		t.Fatalf("tags not normalized: %v", rm.users.setTags)
	}
	for i := range want {
		if rm.users.setTags[i] != want[i] {
			t.Fatalf("tags not normalized: %v", rm.users.setTags)
		}
	}
}
