package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func handleGetPlans(ctx *gin.Context) {
	files, err := os.ReadDir("db/generated/")
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}

	var allIDs []string = []string{}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		id, ok := strings.CutSuffix(file.Name(), "-plan.csv")
		if ok {
			allIDs = append(allIDs, id)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"planIds": allIDs,
	})
}

func handleGetPlanWithId(ctx *gin.Context) {
	id := ctx.Param("id")
	filePath := "db/generated/" + id + "-plan.csv"

	content, err := os.ReadFile(filePath)
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data": string(content),
	})
}

func handlePostPlan(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	if len(form.File["sections"]) == 0 || len(form.File["scores"]) == 0 {
		ctx.Status(http.StatusBadRequest)
		return
	}
	sectionsFile := form.File["sections"][0]
	scoresFile := form.File["scores"][0]
	completed := ctx.PostForm("completed")

	timestamp := fmt.Sprintf("%d", time.Now().UnixNano())
	sectionsPath := "db/" + timestamp + sectionsFile.Filename
	scoresPath := "db/" + timestamp + scoresFile.Filename
	ctx.SaveUploadedFile(sectionsFile, sectionsPath)
	ctx.SaveUploadedFile(scoresFile, scoresPath)
	exportFile := "db/generated/" + timestamp + "-plan.csv"

	planCSV, failed, report := createAndExportPlan(sectionsPath, scoresPath, completed, exportFile)
	if failed {
		ctx.String(http.StatusBadRequest, report)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":   timestamp,
		"data": planCSV,
	})
}
