package api

import (
	"ttland-cms/inout"
	"ttland-cms/pkg/response"
	"ttland-cms/services/cms_service"

	"github.com/gin-gonic/gin"
)

var PerformanceTarget = &performanceTarget{}

type performanceTarget struct{}

var performanceTargetService = &cms_service.PerformanceTargetService{}

func (performanceTarget) List(c *gin.Context) {
	data, err := performanceTargetService.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, data)
}

func (performanceTarget) Detail(c *gin.Context) {
	data, err := performanceTargetService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (performanceTarget) Add(c *gin.Context) {
	var params inout.PerformanceTargetReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := performanceTargetService.Create(params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, data)
}

func (performanceTarget) Update(c *gin.Context) {
	var params inout.PerformanceTargetReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := performanceTargetService.Update(c.Param("id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (performanceTarget) Patch(c *gin.Context) {
	var params inout.PerformanceTargetPatchReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := performanceTargetService.Patch(c.Param("id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (performanceTarget) Delete(c *gin.Context) {
	if err := performanceTargetService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.NoContent(c)
}
