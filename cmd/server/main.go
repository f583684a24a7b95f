package main

import (
	"os"

	"github.com/gin-gonic/gin"
)

func main() {
	os.MkdirAll("db/generated", os.ModePerm)

	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/plan", handleGetPlans)
	r.GET("/plan/:id", handleGetPlanWithId)
	r.POST("/", handlePostPlan)

	r.Run(":3001")
}
