package org

type CreateZoneDTO struct {
	Name string `json:"name" binding:"required,max=100"`
	Code string `json:"code" binding:"required,max=20"`
}

type CreateDilaDTO struct {
	ZoneID uint   `json:"zone_id" binding:"required"`
	Name   string `json:"name" binding:"required,max=100"`
	Code   string `json:"code" binding:"required,max=20"`
}

type CreateMuqamDTO struct {
	DilaID uint   `json:"dila_id" binding:"required"`
	Name   string `json:"name" binding:"required,max=100"`
	Code   string `json:"code" binding:"required,max=20"`
}

type CreateJamaatDTO struct {
	MuqamID uint   `json:"muqam_id" binding:"required"`
	Name    string `json:"name" binding:"required,max=100"`
	Code    string `json:"code" binding:"required,max=20"`
}
