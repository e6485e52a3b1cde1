package api

import (
	"ttland-cms/inout"
	"ttland-cms/pkg/response"
	"ttland-cms/services/cms_service"

	"github.com/gin-gonic/gin"
)

var Store = &store{}

type store struct{}

var storeService = &cms_service.StoreService{}

func (store) List(c *gin.Context) {
	data, err := storeService.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, data)
}

func (store) Detail(c *gin.Context) {
	data, err := storeService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (store) Add(c *gin.Context) {
	var params inout.StoreReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := storeService.Create(params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, data)
}

func (store) Update(c *gin.Context) {
	var params inout.StoreReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := storeService.Update(c.Param("id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (store) Patch(c *gin.Context) {
	var params inout.StorePatchReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := storeService.Patch(c.Param("id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (store) Delete(c *gin.Context) {
	if err := storeService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.NoContent(c)
}
