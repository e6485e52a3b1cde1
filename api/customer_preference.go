package api

import (
	"ttland-cms/inout"
	"ttland-cms/pkg/response"
	"ttland-cms/services/cms_service"

	"github.com/gin-gonic/gin"
)

// CustomerPreference 的路由以客人ID为键，扩展表自身没有独立ID
var CustomerPreference = &customerPreference{}

type customerPreference struct{}

var customerPreferenceService = &cms_service.CustomerPreferenceService{}

func (customerPreference) List(c *gin.Context) {
	data, err := customerPreferenceService.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, data)
}

func (customerPreference) Detail(c *gin.Context) {
	data, err := customerPreferenceService.Get(c.Param("customer_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (customerPreference) Add(c *gin.Context) {
	var params inout.CustomerPreferenceReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := customerPreferenceService.Create(params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, data)
}

func (customerPreference) Update(c *gin.Context) {
	var params inout.CustomerPreferenceReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := customerPreferenceService.Update(c.Param("customer_id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (customerPreference) Patch(c *gin.Context) {
	var params inout.CustomerPreferencePatchReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := customerPreferenceService.Patch(c.Param("customer_id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (customerPreference) Delete(c *gin.Context) {
	if err := customerPreferenceService.Delete(c.Param("customer_id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.NoContent(c)
}
