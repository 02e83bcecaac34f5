package models

import "errors"

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Client struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Neighborhood string   `json:"neighborhood"`
	City         string   `json:"city"`
	Contact      string   `json:"contact"`
	Location     GeoPoint `json:"location"`
}

func (c *Client) Validate() error {
	if c.Name == "" || c.Address == "" || c.City == "" {
		return errors.New("missing required client fields")
	}
	return nil
}

// Equipment всегда хранится встроенным в Visit/ServiceOrder, отдельной коллекции нет.
type Equipment struct {
	ID            string `json:"id"`
	ClientID      string `json:"clientId"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	MillNumber    string `json:"millNumber"`
	MachineNumber string `json:"machineNumber"`
}
