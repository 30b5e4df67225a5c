package models

import "time"

type RequirementType string

const (
	RequirementPermanent RequirementType = "Permanent"
	RequirementContract  RequirementType = "Contract"
	RequirementIntern    RequirementType = "Intern"
)

type OfferStatus string

const (
	OfferPending  OfferStatus = "Pending"
	OfferOffered  OfferStatus = "Offered"
	OfferRejected OfferStatus = "Rejected"
)

type JoiningStatus string

const (
	JoiningPending   JoiningStatus = "Pending"
	JoiningJoined    JoiningStatus = "Joined"
	JoiningNotJoined JoiningStatus = "Not Joined"
)

type RegistrationFee string

const (
	FeeCollected    RegistrationFee = "Yes"
	FeeNotCollected RegistrationFee = "No"
)

// Resume is one candidate follow-up entry. Date, phone and email
// fields are deliberately free text; the desk pastes whatever the
// candidate sent. CreatedYear is stamped once at creation and never
// recomputed on edit.
type Resume struct {
	ID                 uint64          `gorm:"primarykey" json:"id"`
	TelecallDate       string          `gorm:"type:varchar(50)" json:"telecall_date"`
	CandidateDate      string          `gorm:"type:varchar(50)" json:"candidate_date"`
	Mobile             string          `gorm:"type:varchar(50)" json:"mobile"`
	Email              string          `gorm:"type:varchar(255)" json:"email"`
	Location           string          `gorm:"type:varchar(255)" json:"location"`
	Source             string          `gorm:"type:varchar(255)" json:"source"`
	PositionInterested string          `gorm:"type:varchar(255)" json:"position_interested"`
	Qualification      string          `gorm:"type:varchar(255)" json:"qualification"`
	Skills             string          `gorm:"type:text" json:"skills"`
	RequirementType    RequirementType `gorm:"type:varchar(20)" json:"requirement_type"`
	OfferStatus        OfferStatus     `gorm:"type:varchar(20)" json:"offer_status"`
	JoiningStatus      JoiningStatus   `gorm:"type:varchar(20)" json:"joining_status"`
	RegistrationFee    RegistrationFee `gorm:"type:varchar(10)" json:"registration_fee"`
	Amount             float64         `json:"amount"`
	PaymentMode        string          `gorm:"type:varchar(255)" json:"payment_mode"`
	Remarks            string          `gorm:"type:text" json:"remarks"`
	NextFollowupDate   string          `gorm:"type:varchar(50)" json:"next_followup_date"`
	ActionNotes        string          `gorm:"type:text" json:"action_notes"`
	CreatedYear        int             `gorm:"not null" json:"created_year"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
