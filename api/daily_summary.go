package api

import (
	"ttland-cms/inout"
	"ttland-cms/pkg/response"
	"ttland-cms/services/cms_service"

	"github.com/gin-gonic/gin"
)

var DailySummary = &dailySummary{}

type dailySummary struct{}

var dailySummaryService = &cms_service.DailySummaryService{}

func (dailySummary) List(c *gin.Context) {
	data, err := dailySummaryService.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, data)
}

func (dailySummary) Detail(c *gin.Context) {
	data, err := dailySummaryService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (dailySummary) Add(c *gin.Context) {
	var params inout.DailySummaryReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := dailySummaryService.Create(params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, data)
}

func (dailySummary) Update(c *gin.Context) {
	var params inout.DailySummaryReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := dailySummaryService.Update(c.Param("id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (dailySummary) Patch(c *gin.Context) {
	var params inout.DailySummaryPatchReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := dailySummaryService.Patch(c.Param("id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (dailySummary) Delete(c *gin.Context) {
	if err := dailySummaryService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.NoContent(c)
}
