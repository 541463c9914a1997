// controllers/forms.go
package controllers

import (
	"net/http"

	"unovation-backend/models"
	"unovation-backend/utils"

	"github.com/gin-gonic/gin"
)

// Website forms. Each stores its submission, forwards it under the same
// path as the route and answers with the new id.

type QuoteRequestInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	ProjectType string `json:"projectType" binding:"required"`
	Budget      string `json:"budget" binding:"required"`
	Message     string `json:"message" binding:"required"`
	Page        string `json:"page" binding:"required"`
}

type ServiceInquiryInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Service string `json:"service" binding:"required"`
	Message string `json:"message" binding:"required"`
	Page    string `json:"page" binding:"required"`
}

type ContactInput struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message" binding:"required"`
	Page    string  `json:"page" binding:"required"`
}

// NewsletterInput has no source field; footer signups are always "footer".
type NewsletterInput struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
}

type JobApplicationInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,phone"`
	Role    string `json:"role" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ProjectInterestInput struct {
	Project string  `json:"project" binding:"required"`
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Message *string `json:"message"`
	Page    string  `json:"page" binding:"required"`
}

type LeadTrackingInput struct {
	Page   string  `json:"page" binding:"required"`
	Action string  `json:"action" binding:"required"`
	Name   *string `json:"name"`
	Email  *string `json:"email" binding:"omitempty,optemail"`
}

type FeedbackInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Rating  *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	Message string `json:"message" binding:"required"`
	Page    string `json:"page" binding:"required"`
}

// submitted answers the form post and hands the stored record to the
// forwarder.
func (ctl *Controller) submitted(c *gin.Context, path, id string, record interface{}) {
	ctl.Forwarder.Forward(path, record)
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (ctl *Controller) SubmitQuote(c *gin.Context) {
	var input QuoteRequestInput
	if !utils.BindJSON(c, "submitQuote", &input) {
		return
	}
	rec := models.QuoteRequest{
		Name:        input.Name,
		Email:       input.Email,
		ProjectType: input.ProjectType,
		Budget:      input.Budget,
		Message:     input.Message,
		Page:        input.Page,
	}
	if err := ctl.Store.QuoteRequests.Create(ctx(c), &rec); err != nil {
		utils.InternalError(c, "submitQuote", err)
		return
	}
	ctl.submitted(c, "quote", rec.ID, rec)
}

func (ctl *Controller) SubmitServiceInquiry(c *gin.Context) {
	var input ServiceInquiryInput
	if !utils.BindJSON(c, "submitServiceInquiry", &input) {
		return
	}
	rec := models.ServiceInquiry{
		Name:    input.Name,
		Email:   input.Email,
		Service: input.Service,
		Message: input.Message,
		Page:    input.Page,
	}
	if err := ctl.Store.ServiceInquiries.Create(ctx(c), &rec); err != nil {
		utils.InternalError(c, "submitServiceInquiry", err)
		return
	}
	ctl.submitted(c, "service-inquiry", rec.ID, rec)
}

func (ctl *Controller) SubmitContact(c *gin.Context) {
	var input ContactInput
	if !utils.BindJSON(c, "submitContact", &input) {
		return
	}
	rec := models.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   nilIfEmpty(input.Phone),
		Message: input.Message,
		Page:    input.Page,
	}
	if err := ctl.Store.ContactSubmissions.Create(ctx(c), &rec); err != nil {
		utils.InternalError(c, "submitContact", err)
		return
	}
	ctl.submitted(c, "contact", rec.ID, rec)
}

func (ctl *Controller) SubmitNewsletterFooter(c *gin.Context) {
	var input NewsletterInput
	if !utils.BindJSON(c, "submitNewsletter", &input) {
		return
	}
	rec := models.NewsletterSubscription{
		Email:  input.Email,
		Name:   nilIfEmpty(input.Name),
		Source: models.NewsletterSourceFooter,
	}
	if err := ctl.Store.NewsletterSubscriptions.Create(ctx(c), &rec); err != nil {
		utils.InternalError(c, "submitNewsletter", err)
		return
	}
	ctl.submitted(c, "newsletter-footer", rec.ID, rec)
}

func (ctl *Controller) SubmitJobApplication(c *gin.Context) {
	var input JobApplicationInput
	if !utils.BindJSON(c, "submitJobApplication", &input) {
		return
	}
	rec := models.JobApplication{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Role:    input.Role,
		Message: input.Message,
	}
	if err := ctl.Store.JobApplications.Create(ctx(c), &rec); err != nil {
		utils.InternalError(c, "submitJobApplication", err)
		return
	}
	ctl.submitted(c, "job-application", rec.ID, rec)
}

func (ctl *Controller) SubmitProjectInterest(c *gin.Context) {
	var input ProjectInterestInput
	if !utils.BindJSON(c, "submitProjectInterest", &input) {
		return
	}
	rec := models.ProjectInterest{
		Project: input.Project,
		Name:    input.Name,
		Email:   input.Email,
		Message: nilIfEmpty(input.Message),
		Page:    input.Page,
	}
	if err := ctl.Store.ProjectInterests.Create(ctx(c), &rec); err != nil {
		utils.InternalError(c, "submitProjectInterest", err)
		return
	}
	ctl.submitted(c, "project-interest", rec.ID, rec)
}

func (ctl *Controller) SubmitFeedback(c *gin.Context) {
	var input FeedbackInput
	if !utils.BindJSON(c, "submitFeedback", &input) {
		return
	}
	rec := models.FeedbackSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Rating:  input.Rating,
		Message: input.Message,
		Page:    input.Page,
	}
	if err := ctl.Store.FeedbackSubmissions.Create(ctx(c), &rec); err != nil {
		utils.InternalError(c, "submitFeedback", err)
		return
	}
	ctl.submitted(c, "feedback", rec.ID, rec)
}

func (ctl *Controller) TrackLead(c *gin.Context) {
	var input LeadTrackingInput
	if !utils.BindJSON(c, "trackLead", &input) {
		return
	}
	rec := models.LeadTracking{
		Page:   input.Page,
		Action: input.Action,
		Name:   nilIfEmpty(input.Name),
		Email:  nilIfEmpty(input.Email),
	}
	if err := ctl.Store.LeadTracking.Create(ctx(c), &rec); err != nil {
		utils.InternalError(c, "trackLead", err)
		return
	}
	ctl.submitted(c, "lead-tracking", rec.ID, rec)
}
