package mail

import (
	"fmt"

	"shop/internal/domain/service"
)

func verificationText(event *service.EmailEvent) string {
	greeting := "Hello!"
	if event.Username != "" {
		greeting = fmt.Sprintf("Hello, %s!", event.Username)
	}

	return fmt.Sprintf("%s\n\nYour verification code: %d\n", greeting, event.Code)
}
