package models

import "errors"

var (
	// ErrGeneral describes a general error that cannot be resolved by the requester.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrResourceNotFound is raised when a query returns no matching resource.
	// The message is completed by the query callback with the resource name.
	ErrResourceNotFound = errors.New("there is no")
)

// Expense errors
var (
	ErrExpenseAmountNegative   = errors.New("expense amounts must not be negative")
	ErrExpenseCategoryRequired = errors.New("expenses must have a category")
)

// Budget errors
var (
	ErrBudgetCategoryRequired = errors.New("budgets must have a category")
	ErrBudgetLimitNotPositive = errors.New("budget limits must be larger than zero")
	ErrBudgetNotUnique        = errors.New("there is already a budget for this category and month")
)

// IncomeSource errors
var (
	ErrIncomeAmountNegative   = errors.New("income amounts must not be negative")
	ErrIncomeFrequencyInvalid = errors.New("the income frequency is invalid")
)

// SavingsGoal errors
var (
	ErrSavingsContributionNegative = errors.New("monthly contributions must not be negative")
)

// ThresholdTracker errors
var (
	ErrTrackerNotUnique = errors.New("there is already a threshold tracker for this budget and month")
)
