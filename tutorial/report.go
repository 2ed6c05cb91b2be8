package tutorial

import (
	"fmt"

	"github.com/xlab/tablewriter"
)

// Report is a snapshot of what the loader and drivers expose, taken after
// init so it outlives the Vulkan objects it was read from.
type Report struct {
	Layers     []string
	Extensions []string
	Devices    []DeviceReport
	Selected   int
}

type DeviceReport struct {
	Name          string
	Type          string
	VendorID      uint32
	DeviceID      uint32
	APIVersion    string
	DriverVersion string
	CacheUUID     string
	Extensions    []string
}

func (app *Application) Report() Report {
	report := Report{
		Layers:     app.availableLayers,
		Extensions: app.availableExtensions,
		Selected:   -1,
	}

	for _, survey := range app.physicalDeviceSurveys {
		report.Devices = append(report.Devices, DeviceReport{
			Name:          survey.Name,
			Type:          survey.Type,
			VendorID:      survey.VendorID,
			DeviceID:      survey.DeviceID,
			APIVersion:    survey.APIVersion,
			DriverVersion: survey.DriverVersion,
			CacheUUID:     survey.CacheUUID.String(),
			Extensions:    sortedNames(survey.Extensions),
		})
	}

	if app.physicalDeviceSurvey != nil {
		report.Selected = app.physicalDeviceSurvey.Index
	}

	return report
}

func addNameRows(table *tablewriter.Table, heading string, names []string) {
	table.AddRow(heading, "")
	if len(names) == 0 {
		table.AddRow("-", "none")
		return
	}

	for i, name := range names {
		table.AddRow(i+1, name)
	}
}

// Render lays the report out as a UTF-8 box table.
func (r Report) Render() string {
	table := tablewriter.CreateTable()
	table.UTF8Box()
	table.AddTitle("VULKAN INSTANCE AND DEVICES")

	addNameRows(table, "INSTANCE LAYERS", r.Layers)
	table.AddSeparator()
	addNameRows(table, "INSTANCE EXTENSIONS", r.Extensions)

	for idx, device := range r.Devices {
		table.AddSeparator()

		heading := fmt.Sprintf("DEVICE %d", idx)
		if idx == r.Selected {
			heading += " (selected)"
		}
		table.AddRow(heading, device.Name)
		table.AddRow("Type", device.Type)
		table.AddRow("Vendor", fmt.Sprintf("%#x", device.VendorID))
		table.AddRow("Device ID", fmt.Sprintf("%#x", device.DeviceID))
		table.AddRow("API Version", device.APIVersion)
		table.AddRow("Driver Version", device.DriverVersion)
		table.AddRow("Pipeline Cache UUID", device.CacheUUID)

		table.AddSeparator()
		addNameRows(table, "DEVICE EXTENSIONS", device.Extensions)
	}

	return table.Render()
}
