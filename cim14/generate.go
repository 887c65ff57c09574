// Package cim14 holds the CIM14 classes of the LoadModel, WiresExt and
// related packages as Go types, generated by cimgen from the schemas in
// the schema directory.
//
// Every association between two classes is kept consistent in both
// directions: setting SeasonDayTypeSchedule.Season also adds the schedule
// to the SeasonDayTypeSchedules of the season, and removes it from the
// previous season.
//
//	summer := cim14.NewSeason()
//	summer.Name = cim14.SeasonNameSummer
//	weekday := cim14.NewSeasonDayTypeSchedule(cim14.SeasonDayTypeScheduleWithSeason(summer))
//	summer.SeasonDayTypeSchedules() // [weekday]
//
// Classes embed their base class, so a *ConformLoad takes part in the
// associations of EnergyConsumer and PowerSystemResource through its
// embedded fields.
package cim14

//go:generate go run github.com/syssam/cim/cmd/cimgen generate ./schema --target . --package cim14
