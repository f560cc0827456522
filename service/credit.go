package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/tradepoint/returns.api/config"
	"github.com/tradepoint/returns.api/models"
)

// CreditService is an interface for all the requests to the credit issuing
// provider
type CreditService interface {
	IssueCredit(customerID string, amount string) (*models.CreditIssueResponse, ResponseType, error)
}

// CreditClientService issues store credit through the platform credit service
type CreditClientService struct {
	Config config.Config
}

// IssueCredit requests a store credit code for the given customer and amount
func (service *CreditClientService) IssueCredit(customerID string, amount string) (*models.CreditIssueResponse, ResponseType, error) {
	creditRequest := models.OutgoingCreditRequest{
		CustomerID: customerID,
		Amount:     amount,
	}

	requestBody, err := json.Marshal(creditRequest)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading CreditRequest: [%s]", err)
	}

	request, err := http.NewRequest("POST", service.Config.CreditAPIURL+"/credits", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, Error, fmt.Errorf("error generating request for credit service: [%s]", err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", "Bearer "+service.Config.CreditAPIBearerToken)
	request.Header.Add("content-type", "application/json")

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, ExternalFailure, fmt.Errorf("error sending request to credit service: [%s]", err)
	}

	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, ExternalFailure, fmt.Errorf("error reading response from credit service: [%s]", err)
	}

	creditResponse := &models.CreditIssueResponse{}
	err = json.Unmarshal(body, creditResponse)
	if err != nil {
		return nil, ExternalFailure, fmt.Errorf("error reading response from credit service: [%s]", err)
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, ExternalFailure, fmt.Errorf("error status [%v] back from credit service", resp.StatusCode)
	}

	return creditResponse, Success, nil
}
