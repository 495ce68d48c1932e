// Package coloring implements the graph-coloring timetable generator:
// build a course-instance conflict graph, color it with Welsh-Powell or
// DSATUR, then assign classrooms in a second pass.
package coloring

import (
	"context"
	"fmt"
	"sort"

	"campus-core/internal/models"
	"campus-core/internal/scheduling/availability"
	"campus-core/internal/scheduling/timeutil"

	"github.com/google/uuid"
)

// Algorithm selects the node-ordering heuristic.
type Algorithm string

const (
	WelshPowell Algorithm = "welsh-powell"
	DSATUR      Algorithm = "dsatur"
)

// Node is one (course, group, frequency-index) triple awaiting a color.
type Node struct {
	Index            int
	CourseID         uuid.UUID
	GroupID          uuid.UUID
	TeacherID        uuid.UUID
	Session          int
	Duration         int
	RequiredCapacity int
}

// SlotColor is a (day, start_time) pair; a node's end is derived from its own
// duration, never a hardcoded slot length.
type SlotColor struct {
	Day   models.DayOfWeek
	Start string
}

// Graph is the adjacency-set conflict graph over Nodes, with adjacency
// keyed by node index.
type Graph struct {
	Nodes     []Node
	Adjacency map[int]map[int]bool
}

// NewGraph builds an empty graph.
func NewGraph() *Graph {
	return &Graph{Adjacency: make(map[int]map[int]bool)}
}

// AddNode registers a node and returns its index.
func (g *Graph) AddNode(n Node) int {
	n.Index = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	g.Adjacency[n.Index] = make(map[int]bool)
	return n.Index
}

// AddEdge connects two node indices symmetrically.
func (g *Graph) AddEdge(a, b int) {
	if a == b {
		return
	}
	g.Adjacency[a][b] = true
	g.Adjacency[b][a] = true
}

// Degree returns the number of neighbors of node i.
func (g *Graph) Degree(i int) int {
	return len(g.Adjacency[i])
}

// Neighbors returns the neighbor indices of node i.
func (g *Graph) Neighbors(i int) []int {
	out := make([]int, 0, len(g.Adjacency[i]))
	for n := range g.Adjacency[i] {
		out = append(out, n)
	}
	return out
}

// BuildGraph constructs one node per (course, group, frequency-index) and
// connects nodes that share a teacher, a student group, or a course.
func BuildGraph(courses []models.Course) *Graph {
	g := NewGraph()

	for _, course := range courses {
		for _, group := range course.StudentGroups {
			for session := 0; session < course.Frequency; session++ {
				g.AddNode(Node{
					CourseID:         course.ID,
					GroupID:          group.ID,
					TeacherID:        course.TeacherID,
					Session:          session,
					Duration:         course.Duration,
					RequiredCapacity: group.Size,
				})
			}
		}
	}

	for i := 0; i < len(g.Nodes); i++ {
		for j := i + 1; j < len(g.Nodes); j++ {
			if g.Nodes[i].TeacherID == g.Nodes[j].TeacherID ||
				g.Nodes[i].GroupID == g.Nodes[j].GroupID ||
				g.Nodes[i].CourseID == g.Nodes[j].CourseID {
				g.AddEdge(i, j)
			}
		}
	}

	return g
}

// ColorSpace is the flat (day x slot) palette nodes are colored from.
type ColorSpace struct {
	Colors []SlotColor
}

// BuildColorSpace enumerates every (day, start_time) pair across the
// configured days and slots.
func BuildColorSpace(slotStart, slotEnd string, step int) (*ColorSpace, error) {
	starts, err := timeutil.GenerateSlots(slotStart, slotEnd, step, step)
	if err != nil {
		return nil, err
	}
	cs := &ColorSpace{}
	for _, day := range models.SchedulingDays {
		for _, start := range starts {
			cs.Colors = append(cs.Colors, SlotColor{Day: day, Start: start})
		}
	}
	return cs, nil
}

// ClassroomLookup resolves classrooms available for a capacity/availability
// check at a given (day, start, end).
type ClassroomLookup struct {
	Classrooms []models.Classroom
}

func (c ClassroomLookup) feasibleColor(color SlotColor, duration, requiredCapacity int, slotEnd string) bool {
	end := timeutil.EndOf(color.Start, duration)
	if endMin, errEnd := timeutil.ToMinutes(end); errEnd == nil {
		if slotEndMin, errSlot := timeutil.ToMinutes(slotEnd); errSlot == nil && endMin > slotEndMin {
			return false
		}
	}
	for _, room := range c.Classrooms {
		if room.Capacity < requiredCapacity {
			continue
		}
		entity := &availability.Entity{
			Availability:    models.DayIntervals(room.Availability),
			BlackoutPeriods: models.DayIntervals(room.BlackoutPeriods),
		}
		if availability.Within(entity, color.Day, color.Start, end) {
			return true
		}
	}
	return false
}

// Result is the coloring generator's output.
type Result struct {
	Schedule     []models.TimetableEntry
	TotalSlots   int
	Unscheduled  int
	TotalNodes   int
	TotalEdges   int
	ColorsUsed   int
}

// Color runs the requested algorithm over the graph and assigns classrooms
// in a second pass.
func Color(ctx context.Context, graph *Graph, classrooms []models.Classroom, cs *ColorSpace, algorithm Algorithm, slotEnd string, params CourseMeta) (*Result, error) {
	colorOf := make(map[int]int) // node index -> color index, -1 means uncolored
	for i := range graph.Nodes {
		colorOf[i] = -1
	}

	lookup := ClassroomLookup{Classrooms: classrooms}
	colorsUsedSet := make(map[int]bool)

	assign := func(nodeIdx int) {
		node := graph.Nodes[nodeIdx]
		for ci, color := range cs.Colors {
			if usedByNeighbor(graph, colorOf, nodeIdx, ci) {
				continue
			}
			if !lookup.feasibleColor(color, node.Duration, node.RequiredCapacity, slotEnd) {
				continue
			}
			colorOf[nodeIdx] = ci
			colorsUsedSet[ci] = true
			return
		}
	}

	switch algorithm {
	case DSATUR:
		if err := colorDSATUR(ctx, graph, colorOf, assign); err != nil {
			return nil, err
		}
	default:
		for _, nodeIdx := range welshPowellOrder(graph) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			assign(nodeIdx)
		}
	}

	result := &Result{TotalNodes: len(graph.Nodes)}
	for i := range graph.Nodes {
		result.TotalEdges += len(graph.Adjacency[i])
	}
	result.TotalEdges /= 2
	result.ColorsUsed = len(colorsUsedSet)

	type assignment struct {
		nodeIdx int
		color   SlotColor
	}
	var ordered []assignment
	for i := 0; i < len(graph.Nodes); i++ {
		if colorOf[i] >= 0 {
			ordered = append(ordered, assignment{nodeIdx: i, color: cs.Colors[colorOf[i]]})
		} else {
			result.Unscheduled++
		}
	}
	sort.Slice(ordered, func(a, b int) bool { return ordered[a].nodeIdx < ordered[b].nodeIdx })

	taken := make(map[string]bool) // key: classroomID|day|start
	for _, a := range ordered {
		node := graph.Nodes[a.nodeIdx]
		end := timeutil.EndOf(a.color.Start, node.Duration)
		placed := false
		for _, room := range classrooms {
			if room.Capacity < node.RequiredCapacity {
				continue
			}
			entity := &availability.Entity{
				Availability:    models.DayIntervals(room.Availability),
				BlackoutPeriods: models.DayIntervals(room.BlackoutPeriods),
			}
			if !availability.Within(entity, a.color.Day, a.color.Start, end) {
				continue
			}
			key := fmt.Sprintf("%s|%s|%s", room.ID, a.color.Day, a.color.Start)
			if taken[key] {
				continue
			}
			taken[key] = true
			result.Schedule = append(result.Schedule, models.TimetableEntry{
				CourseID:       node.CourseID,
				StudentGroupID: node.GroupID,
				TeacherID:      node.TeacherID,
				ClassroomID:    room.ID,
				DayOfWeek:      a.color.Day,
				StartTime:      a.color.Start,
				EndTime:        end,
				Duration:       node.Duration,
				Semester:       params.Semester,
				AcademicYear:   params.AcademicYear,
				AcademicYearID: params.AcademicYearID,
				InstitutionID:  params.InstitutionID,
				Status:         models.TimetableStatusScheduled,
			})
			placed = true
			break
		}
		if !placed {
			result.Unscheduled++
		}
	}

	result.TotalSlots = len(result.Schedule)
	return result, nil
}

// CourseMeta carries the tenancy/semester stamps attached to every
// generated entry (not part of the graph itself).
type CourseMeta struct {
	Semester       string
	AcademicYear   string
	AcademicYearID uuid.UUID
	InstitutionID  uuid.UUID
}

func usedByNeighbor(g *Graph, colorOf map[int]int, nodeIdx, colorIdx int) bool {
	for neighbor := range g.Adjacency[nodeIdx] {
		if colorOf[neighbor] == colorIdx {
			return true
		}
	}
	return false
}

func welshPowellOrder(g *Graph) []int {
	order := make([]int, len(g.Nodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return g.Degree(order[a]) > g.Degree(order[b])
	})
	return order
}

// colorDSATUR selects nodes in saturation order — saturation being the
// count of distinct real colors among an uncolored node's colored
// neighbors — assigning each via assign() as soon as it's selected, so the
// next selection sees genuine colors rather than a placeholder ordering.
func colorDSATUR(ctx context.Context, g *Graph, colorOf map[int]int, assign func(int)) error {
	n := len(g.Nodes)
	colored := make([]bool, n)
	saturation := make([]map[int]bool, n)
	for i := range saturation {
		saturation[i] = make(map[int]bool)
	}
	if n == 0 {
		return nil
	}

	maxDegreeNode := 0
	for i := 1; i < n; i++ {
		if g.Degree(i) > g.Degree(maxDegreeNode) {
			maxDegreeNode = i
		}
	}

	next := maxDegreeNode
	for colorsAssigned := 0; colorsAssigned < n; colorsAssigned++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		colored[next] = true
		assign(next)
		if c := colorOf[next]; c >= 0 {
			for neighbor := range g.Adjacency[next] {
				if !colored[neighbor] {
					saturation[neighbor][c] = true
				}
			}
		}

		best := -1
		for i := 0; i < n; i++ {
			if colored[i] {
				continue
			}
			if best == -1 {
				best = i
				continue
			}
			if len(saturation[i]) > len(saturation[best]) {
				best = i
			} else if len(saturation[i]) == len(saturation[best]) && g.Degree(i) > g.Degree(best) {
				best = i
			}
		}
		if best == -1 {
			break
		}
		next = best
	}
	return nil
}
