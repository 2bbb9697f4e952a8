package api

import "github.com/yeremiapane/restaurant-client/utils"

// CustomerClient is the anonymous profile. It never attaches a token
// and never clears anything on 401; authorization failures are logged
// and handed back to the caller so customer flows can retry instead
// of being navigated away.
type CustomerClient struct {
	*Client
}

func NewCustomerClient(baseURL string) *CustomerClient {
	c := &CustomerClient{Client: newClient(baseURL)}
	c.Client.onUnauthorized = func() {
		utils.ErrorLogger.Println("customer client: unauthorized response")
	}
	return c
}
