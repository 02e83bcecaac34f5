package models

type OrderStatus string

const (
	OrderDraft     OrderStatus = "draft"
	OrderCompleted OrderStatus = "completed"
	OrderSynced    OrderStatus = "synced"
)

type ReplacedPart struct {
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

type FilterElement struct {
	ChangeDate     string `json:"changeDate"`
	NextChangeDate string `json:"nextChangeDate"`
}

type MachineStatistics struct {
	WaterPressure  float64       `json:"waterPressure"`
	BoilerPressure float64       `json:"boilerPressure"`
	DoseCounter    int           `json:"doseCounter"`
	FilterElement  FilterElement `json:"filterElement"`
	CoffeeType     string        `json:"coffeeType"`
}

type ServiceOrder struct {
	ID                  string            `json:"id"`
	TechnicianID        string            `json:"technicianId" validate:"required"`
	ClientID            string            `json:"clientId" validate:"required"`
	Client              Client            `json:"client"`
	Equipment           Equipment         `json:"equipment"`
	VisitType           VisitType         `json:"visitType" validate:"required"`
	Date                string            `json:"date" validate:"required"`
	ArrivalTime         string            `json:"arrivalTime"`
	DepartureTime       string            `json:"departureTime"`
	ResponsibleName     string            `json:"responsibleName" validate:"required"`
	ReportedProblems    string            `json:"reportedProblems"`
	ServiceExecuted     string            `json:"serviceExecuted"`
	ReplacedParts       []ReplacedPart    `json:"replacedParts"`
	GeneralObservations string            `json:"generalObservations"`
	Statistics          MachineStatistics `json:"statistics"`
	MachinePhoto        string            `json:"machinePhoto,omitempty"`
	TechnicianSignature string            `json:"technicianSignature,omitempty"`
	ClientSignature     string            `json:"clientSignature,omitempty"`
	Status              OrderStatus       `json:"status"`
	CreatedAt           string            `json:"createdAt"`
	UpdatedAt           string            `json:"updatedAt"`
}

// ServiceOrderUpdate — частичное обновление; nil-поля не трогаются.
type ServiceOrderUpdate struct {
	ArrivalTime         *string            `json:"arrivalTime,omitempty"`
	DepartureTime       *string            `json:"departureTime,omitempty"`
	ResponsibleName     *string            `json:"responsibleName,omitempty"`
	ReportedProblems    *string            `json:"reportedProblems,omitempty"`
	ServiceExecuted     *string            `json:"serviceExecuted,omitempty"`
	ReplacedParts       *[]ReplacedPart    `json:"replacedParts,omitempty"`
	GeneralObservations *string            `json:"generalObservations,omitempty"`
	Statistics          *MachineStatistics `json:"statistics,omitempty"`
	MachinePhoto        *string            `json:"machinePhoto,omitempty"`
	TechnicianSignature *string            `json:"technicianSignature,omitempty"`
	ClientSignature     *string            `json:"clientSignature,omitempty"`
	Status              *OrderStatus       `json:"status,omitempty"`
}
