package dto

import (
	"github.com/sreeharir/resume-crm/internal/models"
	"github.com/sreeharir/resume-crm/internal/services"
)

// ResumeRequest is the body of both the create and the update call:
// every mutable field, overwritten wholesale on update. Free-text
// fields are stored verbatim; only the enums and the amount are
// constrained.
type ResumeRequest struct {
	TelecallDate       string                 `json:"telecall_date"`
	CandidateDate      string                 `json:"candidate_date"`
	Mobile             string                 `json:"mobile"`
	Email              string                 `json:"email"`
	Location           string                 `json:"location"`
	Source             string                 `json:"source"`
	PositionInterested string                 `json:"position_interested"`
	Qualification      string                 `json:"qualification"`
	Skills             string                 `json:"skills"`
	RequirementType    models.RequirementType `json:"requirement_type" binding:"omitempty,oneof=Permanent Contract Intern"`
	OfferStatus        models.OfferStatus     `json:"offer_status" binding:"omitempty,oneof=Pending Offered Rejected"`
	JoiningStatus      models.JoiningStatus   `json:"joining_status" binding:"omitempty,oneof=Pending Joined 'Not Joined'"`
	RegistrationFee    models.RegistrationFee `json:"registration_fee" binding:"omitempty,oneof=Yes No"`
	Amount             float64                `json:"amount" binding:"gte=0"`
	PaymentMode        string                 `json:"payment_mode"`
	Remarks            string                 `json:"remarks"`
	NextFollowupDate   string                 `json:"next_followup_date"`
	ActionNotes        string                 `json:"action_notes"`
}

// Fields converts the request into the service-layer field set.
func (r ResumeRequest) Fields() services.ResumeFields {
	return services.ResumeFields{
		TelecallDate:       r.TelecallDate,
		CandidateDate:      r.CandidateDate,
		Mobile:             r.Mobile,
		Email:              r.Email,
		Location:           r.Location,
		Source:             r.Source,
		PositionInterested: r.PositionInterested,
		Qualification:      r.Qualification,
		Skills:             r.Skills,
		RequirementType:    r.RequirementType,
		OfferStatus:        r.OfferStatus,
		JoiningStatus:      r.JoiningStatus,
		RegistrationFee:    r.RegistrationFee,
		Amount:             r.Amount,
		PaymentMode:        r.PaymentMode,
		Remarks:            r.Remarks,
		NextFollowupDate:   r.NextFollowupDate,
		ActionNotes:        r.ActionNotes,
	}
}

// ResumeListResponse wraps the list endpoint payload.
type ResumeListResponse struct {
	Resumes []models.Resume `json:"resumes"`
	Total   int             `json:"total"`
}
