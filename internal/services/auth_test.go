package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/product-listing/internal/models"
	"github.com/sbilibin2017/product-listing/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		email        string
		existingUser *models.User
		readerErr    error
		expectSave   bool
		writerErr    error
		wantErr      error
	}{
		{
			name:       "successful signup",
			email:      "alice@example.com",
			expectSave: true,
		},
		{
			name:         "email already registered",
			email:        "bob@example.com",
			existingUser: &models.User{ID: 1, Email: "bob@example.com"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:       "unique constraint fires on insert",
			email:      "race@example.com",
			expectSave: true,
			writerErr:  fmt.Errorf("%w: email race@example.com", models.ErrAlreadyExists),
			wantErr:    services.ErrUserAlreadyExists,
		},
		{
			name:       "writer error",
			email:      "carol@example.com",
			expectSave: true,
			writerErr:  errors.New("save error"),
			wantErr:    errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.expectSave {
				mockWriter.EXPECT().
					Save(gomock.Any(), "Name", tt.email, gomock.Any()).
					Do(func(_ context.Context, _, _, hash string) {
						assert.NotEqual(t, "pass123", hash, "plaintext must never be stored")
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pass123")))
					}).
					Return(tt.writerErr)
			}

			err := svc.Signup(context.Background(), "Name", tt.email, "pass123")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_LongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := strings.Repeat("x", 80)

	var stored string
	mockReader.EXPECT().GetByEmail(gomock.Any(), "long@example.com").Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "Name", "long@example.com", gomock.Any()).
		Do(func(_ context.Context, _, _, hash string) { stored = hash }).
		Return(nil)

	assert.NoError(t, svc.Signup(context.Background(), "Name", "long@example.com", password))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte(password[:72])))

	user := &models.User{ID: 21, Email: "long@example.com", Password: stored}
	mockReader.EXPECT().GetByEmail(gomock.Any(), "long@example.com").Return(user, nil).Times(2)
	mockJWT.EXPECT().Generate(gomock.Any(), int64(21)).Return("token-long", nil)

	token, err := svc.Login(context.Background(), "long@example.com", password)
	assert.NoError(t, err)
	assert.Equal(t, "token-long", token)

	_, err = svc.Login(context.Background(), "long@example.com", strings.Repeat("y", 80))
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	tests := []struct {
		name      string
		email     string
		user      *models.User
		readerErr error
		loginPass string
		expectJWT bool
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			user:      &models.User{ID: 10, Email: "alice@example.com", Password: string(hashed)},
			loginPass: password,
			expectJWT: true,
			wantToken: "token123",
		},
		{
			name:      "user does not exist",
			email:     "bob@example.com",
			loginPass: password,
			wantErr:   services.ErrUserDoesNotExist,
		},
		{
			name:      "wrong password",
			email:     "carol@example.com",
			user:      &models.User{ID: 11, Email: "carol@example.com", Password: string(hashed)},
			loginPass: "wrongpass",
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "corrupted hash",
			email:     "dave@example.com",
			user:      &models.User{ID: 12, Email: "dave@example.com", Password: "not-a-bcrypt-hash"},
			loginPass: password,
			wantErr:   bcrypt.ErrHashTooShort,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			loginPass: password,
			wantErr:   errors.New("db error"),
		},
		{
			name:      "JWT generation error",
			email:     "dan@example.com",
			user:      &models.User{ID: 13, Email: "dan@example.com", Password: string(hashed)},
			loginPass: password,
			expectJWT: true,
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.expectJWT {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.ID).
					Return(tt.wantToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
