package controllers

import (
	"net/http"

	"unovation-backend/models"
	"unovation-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateFollowUpInput struct {
	ClientID         string      `json:"clientId" binding:"required"`
	FollowUpDate     utils.Date  `json:"followUpDate" binding:"required"`
	FollowUpType     string      `json:"followUpType" binding:"required"`
	DiscussionNotes  string      `json:"discussionNotes" binding:"required"`
	NextFollowUpDate *utils.Date `json:"nextFollowUpDate"`
	Status           string      `json:"status" binding:"required"`
}

// UpdateFollowUpInput cannot move a follow-up to another client
type UpdateFollowUpInput struct {
	FollowUpDate     *utils.Date `json:"followUpDate"`
	FollowUpType     *string     `json:"followUpType" binding:"omitempty,min=1"`
	DiscussionNotes  *string     `json:"discussionNotes" binding:"omitempty,min=1"`
	NextFollowUpDate *utils.Date `json:"nextFollowUpDate"`
	Status           *string     `json:"status" binding:"omitempty,min=1"`
}

func (ctl *Controller) CreateFollowUp(c *gin.Context) {
	var input CreateFollowUpInput
	if !utils.BindJSON(c, "createFollowUp", &input) {
		return
	}
	if !ctl.requireClient(c, "createFollowUp", input.ClientID) {
		return
	}

	followUp := models.FollowUp{
		ClientID:         input.ClientID,
		FollowUpDate:     input.FollowUpDate.Time,
		FollowUpType:     input.FollowUpType,
		DiscussionNotes:  input.DiscussionNotes,
		NextFollowUpDate: input.NextFollowUpDate.TimePtr(),
		Status:           input.Status,
	}
	if err := ctl.Store.FollowUps.Create(ctx(c), &followUp); err != nil {
		utils.InternalError(c, "createFollowUp", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "followUp": followUp})
}

// GetClientFollowUps lists a client's follow-ups, newest first
func (ctl *Controller) GetClientFollowUps(c *gin.Context) {
	followUps, err := ctl.Store.FollowUps.ListByClient(ctx(c), c.Param("id"))
	if err != nil {
		utils.InternalError(c, "getFollowUps", err)
		return
	}
	c.JSON(http.StatusOK, followUps)
}

func (ctl *Controller) UpdateFollowUp(c *gin.Context) {
	var input UpdateFollowUpInput
	if !utils.BindJSON(c, "updateFollowUp", &input) {
		return
	}

	followUp, err := ctl.Store.FollowUps.Update(ctx(c), c.Param("id"), func(f *models.FollowUp) {
		if t := input.FollowUpDate.TimePtr(); t != nil {
			f.FollowUpDate = *t
		}
		if input.FollowUpType != nil {
			f.FollowUpType = *input.FollowUpType
		}
		if input.DiscussionNotes != nil {
			f.DiscussionNotes = *input.DiscussionNotes
		}
		if input.NextFollowUpDate != nil {
			// an empty string clears the next date
			f.NextFollowUpDate = input.NextFollowUpDate.TimePtr()
		}
		if input.Status != nil {
			f.Status = *input.Status
		}
	})
	if err != nil {
		utils.InternalError(c, "updateFollowUp", err)
		return
	}
	if followUp == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Follow-up not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "followUp": followUp})
}

func (ctl *Controller) DeleteFollowUp(c *gin.Context) {
	if err := ctl.Store.FollowUps.Delete(ctx(c), c.Param("id")); err != nil {
		utils.InternalError(c, "deleteFollowUp", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
