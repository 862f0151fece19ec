// Package simulation contains scripted demos that exercise the containers
// against everyday scenarios. Each simulation writes its narration to the
// given writer so callers can capture or redirect the output.
package simulation

import (
	"fmt"
	"io"
	"strings"

	"github.com/c360/linearkit/container"
	"github.com/c360/linearkit/errors"
)

// PrinterQueue runs a FIFO print spool: jobs are queued in arrival order
// and printed until the queue drains.
func PrinterQueue(w io.Writer) error {
	fmt.Fprintln(w, "=== Printer Queue Simulation ===")

	printerQueue := container.NewQueue[string]()

	documents := []string{"Document1.pdf", "Document2.docx", "Document3.txt", "Document4.pptx"}
	for _, doc := range documents {
		if _, err := printerQueue.Enqueue(doc); err != nil {
			return errors.Wrap(err, "simulation", "PrinterQueue", "enqueue job")
		}
		fmt.Fprintf(w, "Added to print queue: %s\n", doc)
	}

	fmt.Fprintf(w, "\nPrint queue: [%s]\n", strings.Join(printerQueue.Items(), ", "))
	if next, ok := printerQueue.Front(); ok {
		fmt.Fprintf(w, "Next to print: %s\n", next)
	}

	fmt.Fprintln(w, "\nProcessing print jobs:")
	for !printerQueue.IsEmpty() {
		job, err := printerQueue.Dequeue()
		if err != nil {
			return errors.Wrap(err, "simulation", "PrinterQueue", "dequeue job")
		}
		fmt.Fprintf(w, "Printing: %s\n", job)
	}

	fmt.Fprintln(w, "All documents printed!")
	return nil
}

// CustomerService runs a help desk where customers are served by priority,
// higher numbers first, ties in arrival order.
func CustomerService(w io.Writer) error {
	fmt.Fprintln(w, "=== Customer Service Simulation ===")

	serviceQueue := container.NewPriorityQueue[string]()

	customers := []struct {
		name     string
		priority int
	}{
		{"Customer1", 1},
		{"VIP Customer", 5},
		{"Customer2", 2},
		{"Premium Customer", 4},
		{"Customer3", 1},
	}

	for _, c := range customers {
		serviceQueue.Enqueue(c.name, c.priority)
		fmt.Fprintf(w, "Added customer: %s (Priority: %d)\n", c.name, c.priority)
	}

	if next, ok := serviceQueue.Front(); ok {
		fmt.Fprintf(w, "\nNext to serve: %s\n", next)
	}

	fmt.Fprintln(w, "\nServing customers by priority:")
	for !serviceQueue.IsEmpty() {
		customer, err := serviceQueue.Dequeue()
		if err != nil {
			return errors.Wrap(err, "simulation", "CustomerService", "dequeue customer")
		}
		fmt.Fprintf(w, "Serving: %s\n", customer)
	}

	return nil
}

// BrowserHistory runs a navigation history on a deque: visits append to the
// back, going back pops the most recent page.
func BrowserHistory(w io.Writer) error {
	fmt.Fprintln(w, "=== Browser History Simulation ===")

	history := container.NewDeque[string]()

	websites := []string{"google.com", "github.com", "stackoverflow.com", "youtube.com"}
	for _, site := range websites {
		history.PushBack(site)
		fmt.Fprintf(w, "Visited: %s\n", site)
	}

	fmt.Fprintf(w, "\nBrowser history: [%s]\n", strings.Join(history.Items(), ", "))
	if current, ok := history.Back(); ok {
		fmt.Fprintf(w, "Current page: %s\n", current)
	}

	left, err := history.PopBack()
	if err != nil {
		return errors.Wrap(err, "simulation", "BrowserHistory", "go back")
	}
	fmt.Fprintf(w, "Going back from: %s\n", left)
	if current, ok := history.Back(); ok {
		fmt.Fprintf(w, "Current page: %s\n", current)
	}

	history.PushBack("reddit.com")
	fmt.Fprintln(w, "Visited: reddit.com")
	fmt.Fprintf(w, "Updated history: [%s]\n", strings.Join(history.Items(), ", "))

	return nil
}

// RunAll runs every simulation in sequence, stopping at the first failure.
func RunAll(w io.Writer) error {
	sims := []func(io.Writer) error{
		PrinterQueue,
		CustomerService,
		BrowserHistory,
	}

	for i, sim := range sims {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := sim(w); err != nil {
			return err
		}
	}
	return nil
}
