package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"launch-dashboard-service/internal/core/domain"
)

// Launches returns a fresh copy of the launch fixture. It mirrors
// adapters/secondary/csvsource/testdata/spacex_launch_dash.csv row for row.
//
// Per site: KSC LC-39A 10/13, CCAFS LC-40 4/11, CCAFS SLC-40 3/5,
// VAFB SLC-4E 2/4. Every launch with payload in [5400, 9500] failed.
func Launches() []domain.LaunchRecord {
	return []domain.LaunchRecord{
		{FlightNumber: 1, LaunchSite: "CCAFS LC-40", Class: 0, PayloadMassKg: 0, BoosterVersion: "F9 v1.0 B0003", BoosterVersionCategory: "v1.0"},
		{FlightNumber: 2, LaunchSite: "CCAFS LC-40", Class: 0, PayloadMassKg: 0, BoosterVersion: "F9 v1.0 B0004", BoosterVersionCategory: "v1.0"},
		{FlightNumber: 3, LaunchSite: "CCAFS LC-40", Class: 0, PayloadMassKg: 525, BoosterVersion: "F9 v1.0 B0005", BoosterVersionCategory: "v1.0"},
		{FlightNumber: 4, LaunchSite: "CCAFS LC-40", Class: 0, PayloadMassKg: 500, BoosterVersion: "F9 v1.0 B0006", BoosterVersionCategory: "v1.0"},
		{FlightNumber: 5, LaunchSite: "CCAFS LC-40", Class: 0, PayloadMassKg: 677, BoosterVersion: "F9 v1.0 B0007", BoosterVersionCategory: "v1.0"},
		{FlightNumber: 6, LaunchSite: "VAFB SLC-4E", Class: 0, PayloadMassKg: 500, BoosterVersion: "F9 v1.1 B1003", BoosterVersionCategory: "v1.1"},
		{FlightNumber: 7, LaunchSite: "CCAFS LC-40", Class: 1, PayloadMassKg: 3170, BoosterVersion: "F9 v1.1", BoosterVersionCategory: "v1.1"},
		{FlightNumber: 8, LaunchSite: "CCAFS LC-40", Class: 1, PayloadMassKg: 3325, BoosterVersion: "F9 v1.1", BoosterVersionCategory: "v1.1"},
		{FlightNumber: 9, LaunchSite: "CCAFS LC-40", Class: 1, PayloadMassKg: 2296, BoosterVersion: "F9 v1.1", BoosterVersionCategory: "v1.1"},
		{FlightNumber: 10, LaunchSite: "CCAFS LC-40", Class: 0, PayloadMassKg: 1316, BoosterVersion: "F9 v1.1", BoosterVersionCategory: "v1.1"},
		{FlightNumber: 11, LaunchSite: "CCAFS LC-40", Class: 1, PayloadMassKg: 4535, BoosterVersion: "F9 v1.1", BoosterVersionCategory: "v1.1"},
		{FlightNumber: 12, LaunchSite: "CCAFS LC-40", Class: 0, PayloadMassKg: 4428, BoosterVersion: "F9 v1.1 B1011", BoosterVersionCategory: "v1.1"},
		{FlightNumber: 13, LaunchSite: "VAFB SLC-4E", Class: 0, PayloadMassKg: 553, BoosterVersion: "F9 v1.1 B1010", BoosterVersionCategory: "v1.1"},
		{FlightNumber: 14, LaunchSite: "VAFB SLC-4E", Class: 1, PayloadMassKg: 2150, BoosterVersion: "F9 FT B1026", BoosterVersionCategory: "FT"},
		{FlightNumber: 15, LaunchSite: "KSC LC-39A", Class: 1, PayloadMassKg: 2490, BoosterVersion: "F9 FT B1031.1", BoosterVersionCategory: "FT"},
		{FlightNumber: 16, LaunchSite: "CCAFS SLC-40", Class: 1, PayloadMassKg: 362, BoosterVersion: "F9 FT B1029", BoosterVersionCategory: "FT"},
		{FlightNumber: 17, LaunchSite: "CCAFS SLC-40", Class: 0, PayloadMassKg: 2205, BoosterVersion: "F9 FT B1031", BoosterVersionCategory: "FT"},
		{FlightNumber: 18, LaunchSite: "KSC LC-39A", Class: 1, PayloadMassKg: 5300, BoosterVersion: "F9 FT B1032.1", BoosterVersionCategory: "FT"},
		{FlightNumber: 19, LaunchSite: "KSC LC-39A", Class: 1, PayloadMassKg: 3136, BoosterVersion: "F9 FT B1034", BoosterVersionCategory: "FT"},
		{FlightNumber: 20, LaunchSite: "KSC LC-39A", Class: 1, PayloadMassKg: 4696, BoosterVersion: "F9 FT B1035.1", BoosterVersionCategory: "FT"},
		{FlightNumber: 21, LaunchSite: "KSC LC-39A", Class: 0, PayloadMassKg: 6070, BoosterVersion: "F9 FT B1030", BoosterVersionCategory: "FT"},
		{FlightNumber: 22, LaunchSite: "KSC LC-39A", Class: 1, PayloadMassKg: 3669, BoosterVersion: "F9 FT B1021.2", BoosterVersionCategory: "FT"},
		{FlightNumber: 23, LaunchSite: "KSC LC-39A", Class: 1, PayloadMassKg: 2708, BoosterVersion: "F9 FT B1036.1", BoosterVersionCategory: "FT"},
		{FlightNumber: 24, LaunchSite: "KSC LC-39A", Class: 0, PayloadMassKg: 7076, BoosterVersion: "F9 FT B1037", BoosterVersionCategory: "FT"},
		{FlightNumber: 25, LaunchSite: "KSC LC-39A", Class: 1, PayloadMassKg: 3310, BoosterVersion: "F9 B4 B1040.1", BoosterVersionCategory: "B4"},
		{FlightNumber: 26, LaunchSite: "KSC LC-39A", Class: 0, PayloadMassKg: 5400, BoosterVersion: "F9 FT B1038.1", BoosterVersionCategory: "FT"},
		{FlightNumber: 27, LaunchSite: "KSC LC-39A", Class: 1, PayloadMassKg: 2647, BoosterVersion: "F9 B4 B1041.1", BoosterVersionCategory: "B4"},
		{FlightNumber: 28, LaunchSite: "CCAFS SLC-40", Class: 1, PayloadMassKg: 3600, BoosterVersion: "F9 B4 B1042.1", BoosterVersionCategory: "B4"},
		{FlightNumber: 29, LaunchSite: "CCAFS SLC-40", Class: 0, PayloadMassKg: 5500, BoosterVersion: "F9 B4 B1043.1", BoosterVersionCategory: "B4"},
		{FlightNumber: 30, LaunchSite: "KSC LC-39A", Class: 1, PayloadMassKg: 5000, BoosterVersion: "F9 B5 B1046.1", BoosterVersionCategory: "B5"},
		{FlightNumber: 31, LaunchSite: "CCAFS SLC-40", Class: 1, PayloadMassKg: 4990, BoosterVersion: "F9 B5 B1047.1", BoosterVersionCategory: "B5"},
		{FlightNumber: 32, LaunchSite: "VAFB SLC-4E", Class: 1, PayloadMassKg: 9600, BoosterVersion: "F9 B5 B1048.1", BoosterVersionCategory: "B5"},
		{FlightNumber: 33, LaunchSite: "KSC LC-39A", Class: 1, PayloadMassKg: 9600, BoosterVersion: "F9 B5 B1049.1", BoosterVersionCategory: "B5"},
	}
}

// Dataset freezes the launch fixture into a Dataset.
func Dataset(t testing.TB) *domain.Dataset {
	t.Helper()
	ds, err := domain.NewDataset(Launches(), "fixture")
	require.NoError(t, err)
	return ds
}
