package api

import (
	"ttland-cms/inout"
	"ttland-cms/pkg/response"
	"ttland-cms/services/cms_service"

	"github.com/gin-gonic/gin"
)

var StaffMember = &staffMember{}

type staffMember struct{}

var staffMemberService = &cms_service.StaffMemberService{}

func (staffMember) List(c *gin.Context) {
	data, err := staffMemberService.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, data)
}

func (staffMember) Detail(c *gin.Context) {
	data, err := staffMemberService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (staffMember) Add(c *gin.Context) {
	var params inout.StaffMemberReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := staffMemberService.Create(params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, data)
}

func (staffMember) Update(c *gin.Context) {
	var params inout.StaffMemberReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := staffMemberService.Update(c.Param("id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (staffMember) Patch(c *gin.Context) {
	var params inout.StaffMemberPatchReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}
	data, err := staffMemberService.Patch(c.Param("id"), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, data)
}

func (staffMember) Delete(c *gin.Context) {
	if err := staffMemberService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.NoContent(c)
}
