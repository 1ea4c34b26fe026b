package handler

import (
	"net/http"
	"testing"

	domainerrors "shop/internal/domain/errors"
	mockUsecase "shop/internal/mocks/usecase"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEmailHandler_Verify(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		ucErr   error
		callsUC bool
		want    int
	}{
		{name: "verified", body: `{"verification_code":123456}`, callsUC: true, want: http.StatusOK},
		{name: "wrong code", body: `{"verification_code":111111}`, callsUC: true, ucErr: domainerrors.ErrVerificationCodeIncorrect, want: domainerrors.ErrVerificationCodeIncorrect.HTTPCode()},
		{name: "missing code", body: `{}`, want: http.StatusUnprocessableEntity},
		{name: "code is not a number", body: `{"verification_code":"abc"}`, want: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verificationUC := mockUsecase.NewMockVerificationUsecase(t)
			h := NewEmailHandler(EmailHandlerParams{VerificationUC: verificationUC})
			user := newTestUser(false)
			if tt.callsUC {
				if tt.ucErr != nil {
					verificationUC.On("Verify", mock.Anything, user, mock.AnythingOfType("int")).Return(nil, tt.ucErr).Once()
				} else {
					verified := *user
					verified.VerifiedEmail = true
					verificationUC.On("Verify", mock.Anything, user, 123456).Return(&verified, nil).Once()
				}
			}

			rec, _ := serve(t, testRoute{
				method:      http.MethodPost,
				route:       "/email/verify",
				handler:     h.Verify,
				body:        jsonBody(tt.body),
				contentType: echo.MIMEApplicationJSON,
				user:        user,
			})

			assert.Equal(t, tt.want, rec.Code)
		})
	}

	t.Run("unauthenticated", func(t *testing.T) {
		h := NewEmailHandler(EmailHandlerParams{VerificationUC: mockUsecase.NewMockVerificationUsecase(t)})

		rec, _ := serve(t, testRoute{method: http.MethodPost, route: "/email/verify", handler: h.Verify})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestEmailHandler_Resend(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		verificationUC := mockUsecase.NewMockVerificationUsecase(t)
		h := NewEmailHandler(EmailHandlerParams{VerificationUC: verificationUC})
		user := newTestUser(false)
		verificationUC.On("Resend", mock.Anything, user).
			Return(&usecase.ResendOutput{Message: "sent to ann@example.com"}, nil).Once()

		rec, env := serve(t, testRoute{method: http.MethodPost, route: "/email/resend", handler: h.Resend, user: user})

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "sent to ann@example.com", decodeData[usecase.ResendOutput](t, env).Message)
	})

	t.Run("already verified", func(t *testing.T) {
		verificationUC := mockUsecase.NewMockVerificationUsecase(t)
		h := NewEmailHandler(EmailHandlerParams{VerificationUC: verificationUC})
		user := newTestUser(true)
		verificationUC.On("Resend", mock.Anything, user).Return(nil, domainerrors.ErrResendAlreadyVerified).Once()

		rec, env := serve(t, testRoute{method: http.MethodPost, route: "/email/resend", handler: h.Resend, user: user})

		assert.Equal(t, domainerrors.ErrResendAlreadyVerified.HTTPCode(), rec.Code)
		assert.Equal(t, domainerrors.ErrResendAlreadyVerified.ErrorCode(), env.Error.Code)
	})
}
