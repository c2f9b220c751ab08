package controllers

import (
	"fmt"
	"gin-grocery/constants"
	"gin-grocery/dto"
	"gin-grocery/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IGroupController interface {
	Create(ctx *gin.Context)
	Join(ctx *gin.Context)
	Info(ctx *gin.Context)
}

type GroupController struct {
	service services.IGroupService
}

func NewGroupController(service services.IGroupService) IGroupController {
	return &GroupController{service: service}
}

func groupResponse(info *services.GroupInfo, message string) dto.GroupResponse {
	return dto.GroupResponse{
		Message:   message,
		GroupID:   info.ID,
		GroupName: info.Name,
		Members:   info.Members,
		Budget:    info.Budget,
	}
}

func (c *GroupController) Create(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}

	var input dto.GroupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	info, err := c.service.CreateGroup(ctx.Request.Context(), input.GroupName, email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, groupResponse(info, fmt.Sprintf("Group '%s' created", info.Name)))
}

func (c *GroupController) Join(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}

	var input dto.GroupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	info, err := c.service.JoinGroup(ctx.Request.Context(), input.GroupName, email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groupResponse(info, fmt.Sprintf("Joined group '%s'", info.Name)))
}

func (c *GroupController) Info(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}

	info, err := c.service.GetGroupInfo(ctx.Request.Context(), email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groupResponse(info, ""))
}
