package main

import (
	"github.com/spf13/cobra"

	"github.com/rpzteam/students/internal/models"
)

type fieldFlags struct {
	name     string
	group    string
	photo    string
	mark     int
	isDonePr bool
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Student name")
	cmd.Flags().StringVar(&f.group, "group", "", "Student group")
	cmd.Flags().StringVar(&f.photo, "photo", "", "Photo url")
	cmd.Flags().IntVar(&f.mark, "mark", 0, "Mark")
	cmd.Flags().BoolVar(&f.isDonePr, "done", false, "Whether the pr is done")
}

// patch keeps only the flags given on the command line.
func (f *fieldFlags) patch(cmd *cobra.Command) *models.StudentPatch {
	patch := &models.StudentPatch{}
	if cmd.Flags().Changed("name") {
		patch.Name = &f.name
	}
	if cmd.Flags().Changed("group") {
		patch.Group = &f.group
	}
	if cmd.Flags().Changed("photo") {
		patch.Photo = &f.photo
	}
	if cmd.Flags().Changed("mark") {
		patch.Mark = &f.mark
	}
	if cmd.Flags().Changed("done") {
		patch.IsDonePr = &f.isDonePr
	}
	return patch
}

func (f *fieldFlags) fields(cmd *cobra.Command) *models.StudentFields {
	patch := f.patch(cmd)
	return &models.StudentFields{
		Name:     patch.Name,
		Group:    patch.Group,
		Photo:    patch.Photo,
		Mark:     patch.Mark,
		IsDonePr: patch.IsDonePr,
	}
}
