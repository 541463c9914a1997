// controllers/pipeline.go
package controllers

import (
	"net/http"

	"unovation-backend/models"
	"unovation-backend/utils"

	"github.com/gin-gonic/gin"
)

// Requirement, proposal, payment and project are one per client. POST
// replaces the client's row when one exists; GET and PATCH address it by
// client id.

type RequirementInput struct {
	ClientID          string      `json:"clientId" binding:"required"`
	WebsiteType       *string     `json:"websiteType"`
	PagesNeeded       *string     `json:"pagesNeeded"`
	Features          *string     `json:"features"`
	ReferenceWebsites *string     `json:"referenceWebsites"`
	BudgetRange       *string     `json:"budgetRange"`
	Deadline          *utils.Date `json:"deadline"`
}

type UpdateRequirementInput struct {
	WebsiteType       *string     `json:"websiteType"`
	PagesNeeded       *string     `json:"pagesNeeded"`
	Features          *string     `json:"features"`
	ReferenceWebsites *string     `json:"referenceWebsites"`
	BudgetRange       *string     `json:"budgetRange"`
	Deadline          *utils.Date `json:"deadline"`
}

type ProposalInput struct {
	ClientID        string  `json:"clientId" binding:"required"`
	ProposedService string  `json:"proposedService" binding:"required"`
	Price           *int    `json:"price" binding:"required,min=0"`
	Timeline        string  `json:"timeline" binding:"required"`
	Notes           *string `json:"notes"`
	ProposalStatus  string  `json:"proposalStatus" binding:"required"`
}

type UpdateProposalInput struct {
	ProposedService *string `json:"proposedService" binding:"omitempty,min=1"`
	Price           *int    `json:"price" binding:"omitempty,min=0"`
	Timeline        *string `json:"timeline" binding:"omitempty,min=1"`
	Notes           *string `json:"notes"`
	ProposalStatus  *string `json:"proposalStatus" binding:"omitempty,min=1"`
}

// PaymentInput accepts balanceAmount for compatibility; the stored balance
// is always totalAmount - advancePaid.
type PaymentInput struct {
	ClientID      string  `json:"clientId" binding:"required"`
	TotalAmount   *int    `json:"totalAmount" binding:"required,min=0"`
	AdvancePaid   *int    `json:"advancePaid" binding:"omitempty,min=0"`
	BalanceAmount *int    `json:"balanceAmount"`
	PaymentMode   *string `json:"paymentMode"`
	PaymentStatus string  `json:"paymentStatus" binding:"required"`
}

type UpdatePaymentInput struct {
	TotalAmount   *int    `json:"totalAmount" binding:"omitempty,min=0"`
	AdvancePaid   *int    `json:"advancePaid" binding:"omitempty,min=0"`
	BalanceAmount *int    `json:"balanceAmount"`
	PaymentMode   *string `json:"paymentMode"`
	PaymentStatus *string `json:"paymentStatus" binding:"omitempty,min=1"`
}

type ProjectInput struct {
	ClientID             string      `json:"clientId" binding:"required"`
	ProjectStage         string      `json:"projectStage" binding:"required"`
	LastUpdate           *string     `json:"lastUpdate"`
	NextAction           *string     `json:"nextAction"`
	ExpectedDeliveryDate *utils.Date `json:"expectedDeliveryDate"`
}

type UpdateProjectInput struct {
	ProjectStage         *string     `json:"projectStage" binding:"omitempty,min=1"`
	LastUpdate           *string     `json:"lastUpdate"`
	NextAction           *string     `json:"nextAction"`
	ExpectedDeliveryDate *utils.Date `json:"expectedDeliveryDate"`
}

func pipelineOf(clientID string) models.PipelineRecord {
	return models.PipelineRecord{ClientID: clientID}
}

// respondOne writes the client's row, or {} when there is none.
func respondOne[T any](c *gin.Context, row *T) {
	if row == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (ctl *Controller) SaveRequirement(c *gin.Context) {
	var input RequirementInput
	if !utils.BindJSON(c, "saveRequirement", &input) {
		return
	}
	if !ctl.requireClient(c, "saveRequirement", input.ClientID) {
		return
	}

	requirement := models.Requirement{
		PipelineRecord:    pipelineOf(input.ClientID),
		WebsiteType:       nilIfEmpty(input.WebsiteType),
		PagesNeeded:       nilIfEmpty(input.PagesNeeded),
		Features:          nilIfEmpty(input.Features),
		ReferenceWebsites: nilIfEmpty(input.ReferenceWebsites),
		BudgetRange:       nilIfEmpty(input.BudgetRange),
		Deadline:          input.Deadline.TimePtr(),
	}
	if err := ctl.Store.Requirements.UpsertByClient(ctx(c), &requirement); err != nil {
		utils.InternalError(c, "saveRequirement", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "requirement": requirement})
}

func (ctl *Controller) GetRequirement(c *gin.Context) {
	requirement, err := ctl.Store.Requirements.GetByClient(ctx(c), c.Param("id"))
	if err != nil {
		utils.InternalError(c, "getRequirement", err)
		return
	}
	respondOne(c, requirement)
}

func (ctl *Controller) UpdateRequirement(c *gin.Context) {
	var input UpdateRequirementInput
	if !utils.BindJSON(c, "updateRequirement", &input) {
		return
	}

	requirement, err := ctl.Store.Requirements.UpdateByClient(ctx(c), c.Param("id"), func(r *models.Requirement) {
		if input.WebsiteType != nil {
			r.WebsiteType = nilIfEmpty(input.WebsiteType)
		}
		if input.PagesNeeded != nil {
			r.PagesNeeded = nilIfEmpty(input.PagesNeeded)
		}
		if input.Features != nil {
			r.Features = nilIfEmpty(input.Features)
		}
		if input.ReferenceWebsites != nil {
			r.ReferenceWebsites = nilIfEmpty(input.ReferenceWebsites)
		}
		if input.BudgetRange != nil {
			r.BudgetRange = nilIfEmpty(input.BudgetRange)
		}
		if input.Deadline != nil {
			r.Deadline = input.Deadline.TimePtr()
		}
	})
	if err != nil {
		utils.InternalError(c, "updateRequirement", err)
		return
	}
	if requirement == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Requirement not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "requirement": requirement})
}

func (ctl *Controller) SaveProposal(c *gin.Context) {
	var input ProposalInput
	if !utils.BindJSON(c, "saveProposal", &input) {
		return
	}
	if !ctl.requireClient(c, "saveProposal", input.ClientID) {
		return
	}

	proposal := models.Proposal{
		PipelineRecord:  pipelineOf(input.ClientID),
		ProposedService: input.ProposedService,
		Price:           *input.Price,
		Timeline:        input.Timeline,
		Notes:           nilIfEmpty(input.Notes),
		ProposalStatus:  input.ProposalStatus,
	}
	if err := ctl.Store.Proposals.UpsertByClient(ctx(c), &proposal); err != nil {
		utils.InternalError(c, "saveProposal", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "proposal": proposal})
}

func (ctl *Controller) GetProposal(c *gin.Context) {
	proposal, err := ctl.Store.Proposals.GetByClient(ctx(c), c.Param("id"))
	if err != nil {
		utils.InternalError(c, "getProposal", err)
		return
	}
	respondOne(c, proposal)
}

func (ctl *Controller) UpdateProposal(c *gin.Context) {
	var input UpdateProposalInput
	if !utils.BindJSON(c, "updateProposal", &input) {
		return
	}

	proposal, err := ctl.Store.Proposals.UpdateByClient(ctx(c), c.Param("id"), func(p *models.Proposal) {
		if input.ProposedService != nil {
			p.ProposedService = *input.ProposedService
		}
		if input.Price != nil {
			p.Price = *input.Price
		}
		if input.Timeline != nil {
			p.Timeline = *input.Timeline
		}
		if input.Notes != nil {
			p.Notes = nilIfEmpty(input.Notes)
		}
		if input.ProposalStatus != nil {
			p.ProposalStatus = *input.ProposalStatus
		}
	})
	if err != nil {
		utils.InternalError(c, "updateProposal", err)
		return
	}
	if proposal == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Proposal not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "proposal": proposal})
}

func (ctl *Controller) SavePayment(c *gin.Context) {
	var input PaymentInput
	if !utils.BindJSON(c, "savePayment", &input) {
		return
	}
	if !ctl.requireClient(c, "savePayment", input.ClientID) {
		return
	}

	payment := models.Payment{
		PipelineRecord: pipelineOf(input.ClientID),
		TotalAmount:    *input.TotalAmount,
		PaymentMode:    nilIfEmpty(input.PaymentMode),
		PaymentStatus:  input.PaymentStatus,
	}
	if input.AdvancePaid != nil {
		payment.AdvancePaid = *input.AdvancePaid
	}
	if err := ctl.Store.Payments.UpsertByClient(ctx(c), &payment); err != nil {
		utils.InternalError(c, "savePayment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "payment": payment})
}

func (ctl *Controller) GetPayment(c *gin.Context) {
	payment, err := ctl.Store.Payments.GetByClient(ctx(c), c.Param("id"))
	if err != nil {
		utils.InternalError(c, "getPayment", err)
		return
	}
	respondOne(c, payment)
}

func (ctl *Controller) UpdatePayment(c *gin.Context) {
	var input UpdatePaymentInput
	if !utils.BindJSON(c, "updatePayment", &input) {
		return
	}

	payment, err := ctl.Store.Payments.UpdateByClient(ctx(c), c.Param("id"), func(p *models.Payment) {
		if input.TotalAmount != nil {
			p.TotalAmount = *input.TotalAmount
		}
		if input.AdvancePaid != nil {
			p.AdvancePaid = *input.AdvancePaid
		}
		if input.PaymentMode != nil {
			p.PaymentMode = nilIfEmpty(input.PaymentMode)
		}
		if input.PaymentStatus != nil {
			p.PaymentStatus = *input.PaymentStatus
		}
	})
	if err != nil {
		utils.InternalError(c, "updatePayment", err)
		return
	}
	if payment == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "payment": payment})
}

func (ctl *Controller) SaveProject(c *gin.Context) {
	var input ProjectInput
	if !utils.BindJSON(c, "saveProject", &input) {
		return
	}
	if !ctl.requireClient(c, "saveProject", input.ClientID) {
		return
	}

	project := models.Project{
		PipelineRecord:       pipelineOf(input.ClientID),
		ProjectStage:         input.ProjectStage,
		LastUpdate:           nilIfEmpty(input.LastUpdate),
		NextAction:           nilIfEmpty(input.NextAction),
		ExpectedDeliveryDate: input.ExpectedDeliveryDate.TimePtr(),
	}
	if err := ctl.Store.Projects.UpsertByClient(ctx(c), &project); err != nil {
		utils.InternalError(c, "saveProject", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

func (ctl *Controller) GetProject(c *gin.Context) {
	project, err := ctl.Store.Projects.GetByClient(ctx(c), c.Param("id"))
	if err != nil {
		utils.InternalError(c, "getProject", err)
		return
	}
	respondOne(c, project)
}

func (ctl *Controller) UpdateProject(c *gin.Context) {
	var input UpdateProjectInput
	if !utils.BindJSON(c, "updateProject", &input) {
		return
	}

	project, err := ctl.Store.Projects.UpdateByClient(ctx(c), c.Param("id"), func(p *models.Project) {
		if input.ProjectStage != nil {
			p.ProjectStage = *input.ProjectStage
		}
		if input.LastUpdate != nil {
			p.LastUpdate = nilIfEmpty(input.LastUpdate)
		}
		if input.NextAction != nil {
			p.NextAction = nilIfEmpty(input.NextAction)
		}
		if input.ExpectedDeliveryDate != nil {
			p.ExpectedDeliveryDate = input.ExpectedDeliveryDate.TimePtr()
		}
	})
	if err != nil {
		utils.InternalError(c, "updateProject", err)
		return
	}
	if project == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}
