package site

import "eventPandey/internal/models"

// PlanningForm is the inline quote request. It only knows whether it was just sent.
type PlanningForm struct {
	Status models.PlanningStatus
}

func NewPlanningForm() *PlanningForm {
	return &PlanningForm{Status: models.PlanningIdle}
}

func (p *PlanningForm) Submit() {
	p.Status = models.PlanningSubmitted
}

func (p *PlanningForm) Reset() {
	p.Status = models.PlanningIdle
}
