package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/tradepoint/returns.api/config"
	"github.com/tradepoint/returns.api/models"
)

// Notification categories sent by this service
const (
	NotificationCategoryReturnRequested = "return-requested"
	NotificationCategoryStatusChanged   = "return-status-changed"
	NotificationCategoryReturnResolved  = "return-resolved"
)

// NotificationService is an interface for all the requests to the
// notification delivery service
type NotificationService interface {
	Notify(userID, category, title, body string, metadata map[string]string) error
}

// NotificationClientService delivers notifications through the platform
// notification service
type NotificationClientService struct {
	Config config.Config
}

// Notify sends a single notification to a user
func (service *NotificationClientService) Notify(userID, category, title, body string, metadata map[string]string) error {
	notificationRequest := models.OutgoingNotificationRequest{
		UserID:   userID,
		Category: category,
		Title:    title,
		Body:     body,
		Metadata: metadata,
	}

	requestBody, err := json.Marshal(notificationRequest)
	if err != nil {
		return fmt.Errorf("error reading NotificationRequest: [%s]", err)
	}

	request, err := http.NewRequest("POST", service.Config.NotificationAPIURL+"/notifications", bytes.NewBuffer(requestBody))
	if err != nil {
		return fmt.Errorf("error generating request for notification service: [%s]", err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", "Bearer "+service.Config.NotificationAPIToken)
	request.Header.Add("content-type", "application/json")

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return fmt.Errorf("error sending request to notification service: [%s]", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("error status [%v] back from notification service", resp.StatusCode)
	}

	return nil
}

// notify sends a notification and only ever logs a delivery failure. A
// notification must never fail or roll back the operation that produced it.
func notify(req *http.Request, notifications NotificationService, userID, category, title, body string, metadata map[string]string) {
	if notifications == nil {
		return
	}

	if err := notifications.Notify(userID, category, title, body, metadata); err != nil {
		log.ErrorR(req, fmt.Errorf("error sending %s notification: [%v]", category, err))
	}
}
