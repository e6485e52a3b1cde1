package router

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"ttland-cms/api"
	"ttland-cms/middleware"
)

func Init(r *gin.Engine) {
	// 校验错误按 json 字段名返回
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	r.GET("/", api.Home)

	apiGroup := r.Group("")
	{
		apiGroup.POST("/auth/login", api.Auth.Login)
		apiGroup.POST("/auth/refresh", api.Auth.Refresh)

		apiGroup.Use(middleware.Jwt())

		apiGroup.GET("/stores", api.Store.List)
		apiGroup.POST("/stores", api.Store.Add)
		apiGroup.GET("/stores/:id", api.Store.Detail)
		apiGroup.PUT("/stores/:id", api.Store.Update)
		apiGroup.PATCH("/stores/:id", api.Store.Patch)
		apiGroup.DELETE("/stores/:id", api.Store.Delete)

		apiGroup.GET("/users", api.User.List)
		apiGroup.POST("/users", api.User.Add)
		apiGroup.GET("/users/:id", api.User.Detail)
		apiGroup.PUT("/users/:id", api.User.Update)
		apiGroup.PATCH("/users/:id", api.User.Patch)
		apiGroup.DELETE("/users/:id", api.User.Delete)

		apiGroup.GET("/staff-members", api.StaffMember.List)
		apiGroup.POST("/staff-members", api.StaffMember.Add)
		apiGroup.GET("/staff-members/:id", api.StaffMember.Detail)
		apiGroup.PUT("/staff-members/:id", api.StaffMember.Update)
		apiGroup.PATCH("/staff-members/:id", api.StaffMember.Patch)
		apiGroup.DELETE("/staff-members/:id", api.StaffMember.Delete)

		apiGroup.GET("/performance-targets", api.PerformanceTarget.List)
		apiGroup.POST("/performance-targets", api.PerformanceTarget.Add)
		apiGroup.GET("/performance-targets/:id", api.PerformanceTarget.Detail)
		apiGroup.PUT("/performance-targets/:id", api.PerformanceTarget.Update)
		apiGroup.PATCH("/performance-targets/:id", api.PerformanceTarget.Patch)
		apiGroup.DELETE("/performance-targets/:id", api.PerformanceTarget.Delete)

		apiGroup.GET("/customers", api.Customer.List)
		apiGroup.POST("/customers", api.Customer.Add)
		apiGroup.GET("/customers/:id", api.Customer.Detail)
		apiGroup.PUT("/customers/:id", api.Customer.Update)
		apiGroup.PATCH("/customers/:id", api.Customer.Patch)
		apiGroup.DELETE("/customers/:id", api.Customer.Delete)

		apiGroup.GET("/customer-profiles", api.CustomerProfile.List)
		apiGroup.POST("/customer-profiles", api.CustomerProfile.Add)
		apiGroup.GET("/customer-profiles/:customer_id", api.CustomerProfile.Detail)
		apiGroup.PUT("/customer-profiles/:customer_id", api.CustomerProfile.Update)
		apiGroup.PATCH("/customer-profiles/:customer_id", api.CustomerProfile.Patch)
		apiGroup.DELETE("/customer-profiles/:customer_id", api.CustomerProfile.Delete)

		apiGroup.GET("/customer-details", api.CustomerDetail.List)
		apiGroup.POST("/customer-details", api.CustomerDetail.Add)
		apiGroup.GET("/customer-details/:customer_id", api.CustomerDetail.Detail)
		apiGroup.PUT("/customer-details/:customer_id", api.CustomerDetail.Update)
		apiGroup.PATCH("/customer-details/:customer_id", api.CustomerDetail.Patch)
		apiGroup.DELETE("/customer-details/:customer_id", api.CustomerDetail.Delete)

		apiGroup.GET("/customer-preferences", api.CustomerPreference.List)
		apiGroup.POST("/customer-preferences", api.CustomerPreference.Add)
		apiGroup.GET("/customer-preferences/:customer_id", api.CustomerPreference.Detail)
		apiGroup.PUT("/customer-preferences/:customer_id", api.CustomerPreference.Update)
		apiGroup.PATCH("/customer-preferences/:customer_id", api.CustomerPreference.Patch)
		apiGroup.DELETE("/customer-preferences/:customer_id", api.CustomerPreference.Delete)

		apiGroup.GET("/visit-records", api.VisitRecord.List)
		apiGroup.POST("/visit-records", api.VisitRecord.Add)
		apiGroup.GET("/visit-records/:id", api.VisitRecord.Detail)
		apiGroup.PUT("/visit-records/:id", api.VisitRecord.Update)
		apiGroup.PATCH("/visit-records/:id", api.VisitRecord.Patch)
		apiGroup.DELETE("/visit-records/:id", api.VisitRecord.Delete)

		apiGroup.GET("/daily-summaries", api.DailySummary.List)
		apiGroup.POST("/daily-summaries", api.DailySummary.Add)
		apiGroup.GET("/daily-summaries/:id", api.DailySummary.Detail)
		apiGroup.PUT("/daily-summaries/:id", api.DailySummary.Update)
		apiGroup.PATCH("/daily-summaries/:id", api.DailySummary.Patch)
		apiGroup.DELETE("/daily-summaries/:id", api.DailySummary.Delete)
	}
}
