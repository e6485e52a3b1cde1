package api

import (
	"ttland-cms/inout"
	"ttland-cms/pkg/response"
	"ttland-cms/services/cms_service"

	"github.com/gin-gonic/gin"
)

var VisitRecord = &visitRecord{}

type visitRecord struct{}

var visitRecordService = &cms_service.VisitRecordService{}

func (visitRecord) List(c *gin.Context) {
	data, err := visitRecordService.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, data)
}

func (visitRecord) Detail(c *gin.Context) {
	data, err := visitRecordService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (visitRecord) Add(c *gin.Context) {
	var params inout.VisitRecordReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := visitRecordService.Create(params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, data)
}

func (visitRecord) Update(c *gin.Context) {
	var params inout.VisitRecordReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := visitRecordService.Update(c.Param("id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (visitRecord) Patch(c *gin.Context) {
	var params inout.VisitRecordPatchReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := visitRecordService.Patch(c.Param("id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (visitRecord) Delete(c *gin.Context) {
	if err := visitRecordService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.NoContent(c)
}
