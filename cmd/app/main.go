package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/maloquacious/rollbook/internal/logger"
	"github.com/maloquacious/rollbook/internal/model"
	"github.com/maloquacious/rollbook/internal/persist"
	"github.com/maloquacious/rollbook/internal/persist/sqlite"
	"github.com/maloquacious/rollbook/internal/store"
	"github.com/maloquacious/rollbook/internal/validator"
	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

var (
	version = semver.Version{Minor: 1, PreRelease: "alpha", Build: semver.Commit()}
)

var (
	dataPath string
	driver   string

	nameFlag   string
	rollFlag   string
	courseFlag string
	gradeFlag  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rollbook",
		Short: "Rollbook student record manager",
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", persist.DefaultDataFile, "path to the snapshot file")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "json", "snapshot driver (json or sqlite)")

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student record",
		RunE:  runAdd,
	}
	addStudentFlags(addCmd)

	updateCmd := &cobra.Command{
		Use:   "update <index>",
		Short: "Replace the student record at an index",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpdate,
	}
	addStudentFlags(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete the student record at an index",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all student records",
		RunE:  runList,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the rollbook version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}

	rootCmd.AddCommand(addCmd, updateCmd, deleteCmd, listCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addStudentFlags registers the record field flags shared by add and update.
func addStudentFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&nameFlag, "name", "", "student name")
	cmd.Flags().StringVar(&rollFlag, "roll", "", "roll number (letters and digits only)")
	cmd.Flags().StringVar(&courseFlag, "course", "", "course name")
	cmd.Flags().StringVar(&gradeFlag, "grade", "", "grade (0-5)")
}

// newManager wires a StudentManager to the persister selected by --driver.
func newManager() (store.Manager, error) {
	var p persist.Persister
	switch driver {
	case "json":
		p = persist.NewFileStore(dataPath, logger.Default)
	case "sqlite":
		p = sqlite.New(dataPath, logger.Default)
	default:
		return nil, fmt.Errorf("unknown snapshot driver %q (want json or sqlite)", driver)
	}
	return store.NewStudentManager(p, logger.Default), nil
}

// studentFromFlags runs every field check, aggregates all failures into one
// message, and only then constructs the record.
func studentFromFlags() (*model.Student, error) {
	var problems []string
	if !validator.IsValidText(nameFlag) {
		problems = append(problems, "name must not be blank")
	}
	if !validator.IsValidRollNumber(rollFlag) {
		problems = append(problems, "roll number must contain only letters and digits")
	}
	if !validator.IsValidText(courseFlag) {
		problems = append(problems, "course must not be blank")
	}
	if !validator.IsValidGradeText(gradeFlag) {
		problems = append(problems, fmt.Sprintf("grade must be a whole number between %d and %d", model.GradeMin, model.GradeMax))
	}
	if len(problems) > 0 {
		return nil, errors.New(strings.Join(problems, "; "))
	}

	grade, err := strconv.Atoi(gradeFlag)
	if err != nil {
		return nil, fmt.Errorf("grade is not a number: %w", err)
	}
	return model.NewStudent(
		strings.TrimSpace(nameFlag),
		strings.TrimSpace(rollFlag),
		strings.TrimSpace(courseFlag),
		grade,
	)
}

// parseIndex converts a positional argument into a 0-based record index.
func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("index %q is not a number", arg)
	}
	return index, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	student, err := studentFromFlags()
	if err != nil {
		return err
	}

	m, err := newManager()
	if err != nil {
		return err
	}
	m.Load()

	if !m.Add(student) {
		return errors.New("could not add student")
	}
	if !m.Save() {
		return fmt.Errorf("could not save snapshot to %s", dataPath)
	}
	renderList(cmd.OutOrStdout(), m.All())
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	student, err := studentFromFlags()
	if err != nil {
		return err
	}

	m, err := newManager()
	if err != nil {
		return err
	}
	m.Load()

	if !m.Update(index, student) {
		return fmt.Errorf("no student record at index %d", index)
	}
	if !m.Save() {
		return fmt.Errorf("could not save snapshot to %s", dataPath)
	}
	renderList(cmd.OutOrStdout(), m.All())
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	m, err := newManager()
	if err != nil {
		return err
	}
	m.Load()

	if !m.Delete(index) {
		return fmt.Errorf("no student record at index %d", index)
	}
	if !m.Save() {
		return fmt.Errorf("could not save snapshot to %s", dataPath)
	}
	renderList(cmd.OutOrStdout(), m.All())
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}
	if !m.Load() {
		return fmt.Errorf("could not load snapshot from %s", dataPath)
	}
	renderList(cmd.OutOrStdout(), m.All())
	return nil
}

// renderList prints the collection with its positional indices, the same
// view every mutating command re-renders from All.
func renderList(w io.Writer, students []model.Student) {
	if len(students) == 0 {
		fmt.Fprintln(w, "no student records")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tROLL\tCOURSE\tGRADE")
	for i, s := range students {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", i, s.Name, s.RollNumber, s.Course, s.Grade)
	}
	tw.Flush()
}
