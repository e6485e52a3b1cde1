package api

import (
	"ttland-cms/inout"
	"ttland-cms/pkg/response"
	"ttland-cms/services/cms_service"

	"github.com/gin-gonic/gin"
)

// CustomerProfile 的路由以客人ID为键，扩展表自身没有独立ID
var CustomerProfile = &customerProfile{}

type customerProfile struct{}

var customerProfileService = &cms_service.CustomerProfileService{}

func (customerProfile) List(c *gin.Context) {
	data, err := customerProfileService.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, data)
}

func (customerProfile) Detail(c *gin.Context) {
	data, err := customerProfileService.Get(c.Param("customer_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (customerProfile) Add(c *gin.Context) {
	var params inout.CustomerProfileReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := customerProfileService.Create(params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, data)
}

func (customerProfile) Update(c *gin.Context) {
	var params inout.CustomerProfileReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := customerProfileService.Update(c.Param("customer_id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (customerProfile) Patch(c *gin.Context) {
	var params inout.CustomerProfilePatchReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := customerProfileService.Patch(c.Param("customer_id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (customerProfile) Delete(c *gin.Context) {
	if err := customerProfileService.Delete(c.Param("customer_id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.NoContent(c)
}
