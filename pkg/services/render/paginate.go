package render

import (
	"sort"

	"github.com/team-tools/weekreport/pkg/models/domain"
)

// tasksPerPage is the fixed page real estate: two task rows per slide.
const tasksPerPage = 2

// TaskPage holds the tasks placed on one slide, at most two. A single empty
// page marks a report with no tasks at all.
type TaskPage []domain.TaskRecord

// PaginateTasks groups tasks by the lowest display order among their
// assignees and splits each group into pages. Pages never mix tasks from
// different groups, so one person's week stays on a contiguous run of
// slides; an odd trailing task gets a page of its own and the layout fills
// the empty slot.
func PaginateTasks(tasks []domain.TaskRecord) []TaskPage {
	if len(tasks) == 0 {
		return []TaskPage{{}}
	}

	buckets := make(map[int][]domain.TaskRecord)
	for _, task := range tasks {
		order := effectiveOrder(task)
		buckets[order] = append(buckets[order], task)
	}

	orders := make([]int, 0, len(buckets))
	for order := range buckets {
		orders = append(orders, order)
	}
	sort.Ints(orders)

	var pages []TaskPage
	for _, order := range orders {
		group := buckets[order]
		for i := 0; i < len(group); i += tasksPerPage {
			end := i + tasksPerPage
			if end > len(group) {
				end = len(group)
			}
			pages = append(pages, TaskPage(group[i:end]))
		}
	}
	return pages
}

// effectiveOrder is the minimum assignee display order, falling back to the
// task's own order when nobody is assigned.
func effectiveOrder(task domain.TaskRecord) int {
	if len(task.Assignees) == 0 {
		return task.DisplayOrder
	}
	min := task.Assignees[0].DisplayOrder
	for _, a := range task.Assignees[1:] {
		if a.DisplayOrder < min {
			min = a.DisplayOrder
		}
	}
	return min
}
