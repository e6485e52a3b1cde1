package api

import (
	"ttland-cms/inout"
	"ttland-cms/pkg/response"
	"ttland-cms/services/cms_service"

	"github.com/gin-gonic/gin"
)

// CustomerDetail 的路由以客人ID为键，扩展表自身没有独立ID
var CustomerDetail = &customerDetail{}

type customerDetail struct{}

var customerDetailService = &cms_service.CustomerDetailService{}

func (customerDetail) List(c *gin.Context) {
	data, err := customerDetailService.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, data)
}

func (customerDetail) Detail(c *gin.Context) {
	data, err := customerDetailService.Get(c.Param("customer_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (customerDetail) Add(c *gin.Context) {
	var params inout.CustomerDetailReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := customerDetailService.Create(params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, data)
}

func (customerDetail) Update(c *gin.Context) {
	var params inout.CustomerDetailReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := customerDetailService.Update(c.Param("customer_id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (customerDetail) Patch(c *gin.Context) {
	var params inout.CustomerDetailPatchReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := customerDetailService.Patch(c.Param("customer_id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (customerDetail) Delete(c *gin.Context) {
	if err := customerDetailService.Delete(c.Param("customer_id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.NoContent(c)
}
