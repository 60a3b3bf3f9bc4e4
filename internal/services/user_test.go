package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"storefront-api/internal/models"
	"storefront-api/internal/services"
)

func setupUserTest() (*services.UserService, *memUserStore, *recordingNotifier) {
	users := newMemUserStore()
	notifier := &recordingNotifier{}
	svc := services.NewUserService(users, stubTokenIssuer{}, notifier)
	return svc, users, notifier
}

func validRegistration() services.RegisterInput {
	return services.RegisterInput{
		FirstName: "Anna",
		LastName:  "Reyes",
		Email:     "anna@example.com",
		MobileNo:  "09171234567",
		Password:  "correcthorse",
	}
}

func TestRegister_Success(t *testing.T) {
	svc, users, notifier := setupUserTest()

	err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	user, err := users.FindByEmail(context.Background(), "anna@example.com")
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "correcthorse", user.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("correcthorse")))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "anna@example.com", notifier.sent[0].to)
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _ := setupUserTest()

	cases := []struct {
		name    string
		mutate  func(*services.RegisterInput)
		wantErr error
	}{
		{"missing first name", func(in *services.RegisterInput) { in.FirstName = "" }, models.ErrInvalidInput},
		{"missing password", func(in *services.RegisterInput) { in.Password = "" }, models.ErrInvalidInput},
		{"email without at sign", func(in *services.RegisterInput) { in.Email = "annaexample.com" }, models.ErrInvalidEmail},
		{"mobile number too short", func(in *services.RegisterInput) { in.MobileNo = "0917123456" }, models.ErrInvalidMobile},
		{"mobile number too long", func(in *services.RegisterInput) { in.MobileNo = "091712345678" }, models.ErrInvalidMobile},
		{"password too short", func(in *services.RegisterInput) { in.Password = "short12" }, models.ErrShortPassword},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegistration()
			tc.mutate(&in)
			assert.ErrorIs(t, svc.Register(context.Background(), in), tc.wantErr)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := setupUserTest()

	require.NoError(t, svc.Register(context.Background(), validRegistration()))

	err := svc.Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestLogin_Success(t *testing.T) {
	svc, _, _ := setupUserTest()
	require.NoError(t, svc.Register(context.Background(), validRegistration()))

	token, err := svc.Login(context.Background(), services.LoginInput{
		Email:    "anna@example.com",
		Password: "correcthorse",
	})

	require.NoError(t, err)
	assert.Equal(t, "token:anna@example.com", token)
}

func TestLogin_Failures(t *testing.T) {
	svc, _, _ := setupUserTest()
	require.NoError(t, svc.Register(context.Background(), validRegistration()))

	_, err := svc.Login(context.Background(), services.LoginInput{Email: "anna@example.com", Password: "wrongwrong"})
	assert.ErrorIs(t, err, models.ErrPasswordMismatch)

	_, err = svc.Login(context.Background(), services.LoginInput{Email: "nobody@example.com", Password: "correcthorse"})
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = svc.Login(context.Background(), services.LoginInput{Email: "annaexample.com", Password: "correcthorse"})
	assert.ErrorIs(t, err, models.ErrInvalidEmail)

	_, err = svc.Login(context.Background(), services.LoginInput{Email: "", Password: ""})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestPromoteToAdmin(t *testing.T) {
	svc, users, _ := setupUserTest()
	require.NoError(t, svc.Register(context.Background(), validRegistration()))
	stored, err := users.FindByEmail(context.Background(), "anna@example.com")
	require.NoError(t, err)

	promoted, err := svc.PromoteToAdmin(context.Background(), stored.ID.Hex())
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	_, err = svc.PromoteToAdmin(context.Background(), stored.ID.Hex())
	assert.ErrorIs(t, err, models.ErrAlreadyAdmin)
}

func TestPromoteToAdmin_UnknownUser(t *testing.T) {
	svc, _, _ := setupUserTest()

	_, err := svc.PromoteToAdmin(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUpdatePassword(t *testing.T) {
	svc, users, notifier := setupUserTest()
	require.NoError(t, svc.Register(context.Background(), validRegistration()))
	stored, err := users.FindByEmail(context.Background(), "anna@example.com")
	require.NoError(t, err)
	notifier.sent = nil

	err = svc.UpdatePassword(context.Background(), stored.ID.Hex(), stored.Email, "newsecret99")
	require.NoError(t, err)

	updated, err := users.FindByID(context.Background(), stored.ID.Hex())
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newsecret99")))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Password Changed for E-Commerce API", notifier.sent[0].subject)
}

func TestUpdatePassword_EmptyPassword(t *testing.T) {
	svc, _, _ := setupUserTest()

	err := svc.UpdatePassword(context.Background(), "any", "any@example.com", "")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestDetails(t *testing.T) {
	svc, users, _ := setupUserTest()
	require.NoError(t, svc.Register(context.Background(), validRegistration()))
	stored, err := users.FindByEmail(context.Background(), "anna@example.com")
	require.NoError(t, err)

	user, err := svc.Details(context.Background(), stored.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Anna", user.FirstName)

	_, err = svc.Details(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
