package api

import (
	"ttland-cms/inout"
	"ttland-cms/pkg/response"
	"ttland-cms/services/cms_service"

	"github.com/gin-gonic/gin"
)

var Customer = &customer{}

type customer struct{}

var customerService = &cms_service.CustomerService{}

func (customer) List(c *gin.Context) {
	data, err := customerService.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, data)
}

func (customer) Detail(c *gin.Context) {
	data, err := customerService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (customer) Add(c *gin.Context) {
	var params inout.CustomerReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := customerService.Create(params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, data)
}

func (customer) Update(c *gin.Context) {
	var params inout.CustomerReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := customerService.Update(c.Param("id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (customer) Patch(c *gin.Context) {
	var params inout.CustomerPatchReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := customerService.Patch(c.Param("id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (customer) Delete(c *gin.Context) {
	if err := customerService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.NoContent(c)
}
