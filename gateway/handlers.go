package gateway

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/c360/linearkit/errors"
	"github.com/c360/linearkit/session"
	"github.com/c360/linearkit/stackops"
)

// route binds one HTTP endpoint to one handler.
type route struct {
	Method  string
	Path    string
	handler func(*Gateway, http.ResponseWriter, *http.Request)
}

// routeTable is the full API surface. One route, one container operation.
// Assigned in init to break the initialization cycle with handleInfo,
// which iterates the table.
var routeTable []route

func init() {
	routeTable = []route{
		{"POST", "/api/stack/push", (*Gateway).handleStackPush},
		{"POST", "/api/stack/pop", (*Gateway).handleStackPop},
		{"GET", "/api/stack/peek", (*Gateway).handleStackPeek},
		{"GET", "/api/stack/size", (*Gateway).handleStackSize},
		{"GET", "/api/stack/all", (*Gateway).handleStackAll},
		{"GET", "/api/stack/search", (*Gateway).handleStackSearch},
		{"GET", "/api/stack/element", (*Gateway).handleStackElement},
		{"POST", "/api/stack/clear", (*Gateway).handleStackClear},
		{"POST", "/api/stack/maxsize", (*Gateway).handleStackMaxSize},

		{"POST", "/api/minstack/push", (*Gateway).handleMinStackPush},
		{"POST", "/api/minstack/pop", (*Gateway).handleMinStackPop},
		{"GET", "/api/minstack/min", (*Gateway).handleMinStackMin},

		{"POST", "/api/queue/enqueue", (*Gateway).handleQueueEnqueue},
		{"POST", "/api/queue/dequeue", (*Gateway).handleQueueDequeue},
		{"GET", "/api/queue/front", (*Gateway).handleQueueFront},
		{"GET", "/api/queue/rear", (*Gateway).handleQueueRear},
		{"GET", "/api/queue/size", (*Gateway).handleQueueSize},
		{"GET", "/api/queue/all", (*Gateway).handleQueueAll},
		{"GET", "/api/queue/search", (*Gateway).handleQueueSearch},
		{"GET", "/api/queue/element", (*Gateway).handleQueueElement},
		{"POST", "/api/queue/clear", (*Gateway).handleQueueClear},
		{"POST", "/api/queue/maxsize", (*Gateway).handleQueueMaxSize},

		{"POST", "/api/circular/enqueue", (*Gateway).handleRingEnqueue},
		{"POST", "/api/circular/dequeue", (*Gateway).handleRingDequeue},
		{"GET", "/api/circular/front", (*Gateway).handleRingFront},
		{"GET", "/api/circular/rear", (*Gateway).handleRingRear},
		{"GET", "/api/circular/size", (*Gateway).handleRingSize},
		{"GET", "/api/circular/all", (*Gateway).handleRingAll},
		{"POST", "/api/circular/clear", (*Gateway).handleRingClear},

		{"POST", "/api/priority/enqueue", (*Gateway).handlePriorityEnqueue},
		{"POST", "/api/priority/dequeue", (*Gateway).handlePriorityDequeue},
		{"GET", "/api/priority/front", (*Gateway).handlePriorityFront},
		{"GET", "/api/priority/size", (*Gateway).handlePrioritySize},
		{"GET", "/api/priority/all", (*Gateway).handlePriorityAll},
		{"POST", "/api/priority/clear", (*Gateway).handlePriorityClear},

		{"POST", "/api/deque/push-front", (*Gateway).handleDequePushFront},
		{"POST", "/api/deque/push-back", (*Gateway).handleDequePushBack},
		{"POST", "/api/deque/pop-front", (*Gateway).handleDequePopFront},
		{"POST", "/api/deque/pop-back", (*Gateway).handleDequePopBack},
		{"GET", "/api/deque/front", (*Gateway).handleDequeFront},
		{"GET", "/api/deque/back", (*Gateway).handleDequeBack},
		{"GET", "/api/deque/size", (*Gateway).handleDequeSize},
		{"GET", "/api/deque/all", (*Gateway).handleDequeAll},
		{"POST", "/api/deque/clear", (*Gateway).handleDequeClear},

		{"POST", "/api/util/balanced", (*Gateway).handleUtilBalanced},
		{"POST", "/api/util/reverse", (*Gateway).handleUtilReverse},
		{"POST", "/api/util/binary", (*Gateway).handleUtilBinary},

		{"POST", "/api/session", (*Gateway).handleSessionCreate},
		{"DELETE", "/api/session/{id}", (*Gateway).handleSessionDelete},

		{"GET", "/api/health", (*Gateway).handleHealth},
		{"GET", "/api/info", (*Gateway).handleInfo},
	}
}

// apiRequest is the request body shared by all POST routes. Pointer fields
// distinguish absent from zero.
type apiRequest struct {
	Item       *string `json:"item"`
	Priority   *int    `json:"priority"`
	Expression *string `json:"expression"`
	Text       *string `json:"text"`
	Number     *int    `json:"number"`
	MaxSize    *int    `json:"max_size"`
}

// decode parses the request body. An empty body decodes to an empty
// request; malformed JSON is a 400, an oversized body a 413.
func (g *Gateway) decode(w http.ResponseWriter, r *http.Request) (apiRequest, bool) {
	var req apiRequest
	if r.Body == nil {
		return req, true
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err == nil || goerrors.Is(err, io.EOF) {
		return req, true
	}

	var maxErr *http.MaxBytesError
	if goerrors.As(err, &maxErr) {
		g.writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds maximum size of %d bytes", maxErr.Limit))
		return req, false
	}

	g.writeError(w, http.StatusBadRequest, "invalid JSON payload")
	return req, false
}

// requireItem extracts the mandatory item field, writing a 400 when absent.
func (g *Gateway) requireItem(w http.ResponseWriter, req apiRequest) (string, bool) {
	if req.Item == nil {
		g.writeError(w, http.StatusBadRequest, "missing required field: item")
		return "", false
	}
	return *req.Item, true
}

// invalidf builds an invalid-input error whose envelope message is the
// formatted text alone, without wrapping context.
func invalidf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return &errors.ClassifiedError{
		Class:   errors.ErrorInvalid,
		Err:     goerrors.New(msg),
		Message: msg,
	}
}

// Stack handlers

func (g *Gateway) handleStackPush(w http.ResponseWriter, r *http.Request) {
	req, ok := g.decode(w, r)
	if !ok {
		return
	}
	item, ok := g.requireItem(w, req)
	if !ok {
		return
	}
	g.run(w, r, "stack", "push", true, func(c *session.Containers) (fields, error) {
		size, err := c.Stack.Push(item)
		if err != nil {
			return nil, err
		}
		return fields{"item": item, "size": size}, nil
	})
}

func (g *Gateway) handleStackPop(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "stack", "pop", true, func(c *session.Containers) (fields, error) {
		v, err := c.Stack.Pop()
		if err != nil {
			return nil, err
		}
		return fields{"item": v, "size": c.Stack.Size()}, nil
	})
}

func (g *Gateway) handleStackPeek(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "stack", "peek", false, func(c *session.Containers) (fields, error) {
		v, ok := c.Stack.Peek()
		if !ok {
			return nil, errors.ErrUnderflow
		}
		return fields{"item": v}, nil
	})
}

func (g *Gateway) handleStackSize(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "stack", "size", false, func(c *session.Containers) (fields, error) {
		return fields{"size": c.Stack.Size(), "is_empty": c.Stack.IsEmpty()}, nil
	})
}

func (g *Gateway) handleStackAll(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "stack", "all", false, func(c *session.Containers) (fields, error) {
		return fields{"items": c.Stack.Items(), "size": c.Stack.Size()}, nil
	})
}

func (g *Gateway) handleStackSearch(w http.ResponseWriter, r *http.Request) {
	item := r.URL.Query().Get("item")
	if item == "" {
		g.writeError(w, http.StatusBadRequest, "missing required parameter: item")
		return
	}
	g.run(w, r, "stack", "search", false, func(c *session.Containers) (fields, error) {
		return fields{"item": item, "position": c.Stack.Search(item)}, nil
	})
}

func (g *Gateway) handleStackElement(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(r.URL.Query().Get("position"))
	if err != nil {
		g.writeError(w, http.StatusBadRequest, "position must be an integer")
		return
	}
	g.run(w, r, "stack", "element", false, func(c *session.Containers) (fields, error) {
		v, ok := c.Stack.ElementAt(position)
		if !ok {
			return nil, invalidf("position %d out of range", position)
		}
		return fields{"item": v, "position": position}, nil
	})
}

func (g *Gateway) handleStackClear(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "stack", "clear", true, func(c *session.Containers) (fields, error) {
		c.Stack.Clear()
		return fields{"size": 0}, nil
	})
}

func (g *Gateway) handleStackMaxSize(w http.ResponseWriter, r *http.Request) {
	req, ok := g.decode(w, r)
	if !ok {
		return
	}
	if req.MaxSize == nil {
		g.writeError(w, http.StatusBadRequest, "missing required field: max_size")
		return
	}
	g.run(w, r, "stack", "maxsize", false, func(c *session.Containers) (fields, error) {
		c.Stack.SetMaxSize(*req.MaxSize)
		return fields{"max_size": c.Stack.MaxSize(), "size": c.Stack.Size()}, nil
	})
}

// MinStack handlers

func (g *Gateway) handleMinStackPush(w http.ResponseWriter, r *http.Request) {
	req, ok := g.decode(w, r)
	if !ok {
		return
	}
	item, ok := g.requireItem(w, req)
	if !ok {
		return
	}
	g.run(w, r, "minstack", "push", true, func(c *session.Containers) (fields, error) {
		size, err := c.MinStack.Push(item)
		if err != nil {
			return nil, err
		}
		return fields{"item": item, "size": size}, nil
	})
}

func (g *Gateway) handleMinStackPop(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "minstack", "pop", true, func(c *session.Containers) (fields, error) {
		v, err := c.MinStack.Pop()
		if err != nil {
			return nil, err
		}
		return fields{"item": v, "size": c.MinStack.Size()}, nil
	})
}

func (g *Gateway) handleMinStackMin(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "minstack", "min", false, func(c *session.Containers) (fields, error) {
		v, ok := c.MinStack.Min()
		if !ok {
			return nil, errors.ErrUnderflow
		}
		return fields{"min": v}, nil
	})
}

// Queue handlers

func (g *Gateway) handleQueueEnqueue(w http.ResponseWriter, r *http.Request) {
	req, ok := g.decode(w, r)
	if !ok {
		return
	}
	item, ok := g.requireItem(w, req)
	if !ok {
		return
	}
	g.run(w, r, "queue", "enqueue", true, func(c *session.Containers) (fields, error) {
		size, err := c.Queue.Enqueue(item)
		if err != nil {
			return nil, err
		}
		return fields{"item": item, "size": size}, nil
	})
}

func (g *Gateway) handleQueueDequeue(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "queue", "dequeue", true, func(c *session.Containers) (fields, error) {
		v, err := c.Queue.Dequeue()
		if err != nil {
			return nil, err
		}
		return fields{"item": v, "size": c.Queue.Size()}, nil
	})
}

func (g *Gateway) handleQueueFront(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "queue", "front", false, func(c *session.Containers) (fields, error) {
		v, ok := c.Queue.Front()
		if !ok {
			return nil, errors.ErrUnderflow
		}
		return fields{"item": v}, nil
	})
}

func (g *Gateway) handleQueueRear(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "queue", "rear", false, func(c *session.Containers) (fields, error) {
		v, ok := c.Queue.Rear()
		if !ok {
			return nil, errors.ErrUnderflow
		}
		return fields{"item": v}, nil
	})
}

func (g *Gateway) handleQueueSize(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "queue", "size", false, func(c *session.Containers) (fields, error) {
		return fields{"size": c.Queue.Size(), "is_empty": c.Queue.IsEmpty()}, nil
	})
}

func (g *Gateway) handleQueueAll(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "queue", "all", false, func(c *session.Containers) (fields, error) {
		return fields{"items": c.Queue.Items(), "size": c.Queue.Size()}, nil
	})
}

func (g *Gateway) handleQueueSearch(w http.ResponseWriter, r *http.Request) {
	item := r.URL.Query().Get("item")
	if item == "" {
		g.writeError(w, http.StatusBadRequest, "missing required parameter: item")
		return
	}
	g.run(w, r, "queue", "search", false, func(c *session.Containers) (fields, error) {
		return fields{"item": item, "position": c.Queue.Search(item)}, nil
	})
}

func (g *Gateway) handleQueueElement(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(r.URL.Query().Get("position"))
	if err != nil {
		g.writeError(w, http.StatusBadRequest, "position must be an integer")
		return
	}
	g.run(w, r, "queue", "element", false, func(c *session.Containers) (fields, error) {
		v, ok := c.Queue.ElementAt(position)
		if !ok {
			return nil, invalidf("position %d out of range", position)
		}
		return fields{"item": v, "position": position}, nil
	})
}

func (g *Gateway) handleQueueClear(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "queue", "clear", true, func(c *session.Containers) (fields, error) {
		c.Queue.Clear()
		return fields{"size": 0}, nil
	})
}

func (g *Gateway) handleQueueMaxSize(w http.ResponseWriter, r *http.Request) {
	req, ok := g.decode(w, r)
	if !ok {
		return
	}
	if req.MaxSize == nil {
		g.writeError(w, http.StatusBadRequest, "missing required field: max_size")
		return
	}
	g.run(w, r, "queue", "maxsize", false, func(c *session.Containers) (fields, error) {
		c.Queue.SetMaxSize(*req.MaxSize)
		return fields{"max_size": c.Queue.MaxSize(), "size": c.Queue.Size()}, nil
	})
}

// Circular queue handlers

func (g *Gateway) handleRingEnqueue(w http.ResponseWriter, r *http.Request) {
	req, ok := g.decode(w, r)
	if !ok {
		return
	}
	item, ok := g.requireItem(w, req)
	if !ok {
		return
	}
	g.run(w, r, "circular", "enqueue", true, func(c *session.Containers) (fields, error) {
		size, err := c.Ring.Enqueue(item)
		if err != nil {
			return nil, err
		}
		return fields{"item": item, "size": size, "is_full": c.Ring.IsFull()}, nil
	})
}

func (g *Gateway) handleRingDequeue(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "circular", "dequeue", true, func(c *session.Containers) (fields, error) {
		v, err := c.Ring.Dequeue()
		if err != nil {
			return nil, err
		}
		return fields{"item": v, "size": c.Ring.Size()}, nil
	})
}

func (g *Gateway) handleRingFront(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "circular", "front", false, func(c *session.Containers) (fields, error) {
		v, ok := c.Ring.Front()
		if !ok {
			return nil, errors.ErrUnderflow
		}
		return fields{"item": v}, nil
	})
}

func (g *Gateway) handleRingRear(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "circular", "rear", false, func(c *session.Containers) (fields, error) {
		v, ok := c.Ring.Rear()
		if !ok {
			return nil, errors.ErrUnderflow
		}
		return fields{"item": v}, nil
	})
}

func (g *Gateway) handleRingSize(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "circular", "size", false, func(c *session.Containers) (fields, error) {
		return fields{
			"size":     c.Ring.Size(),
			"capacity": c.Ring.Capacity(),
			"is_full":  c.Ring.IsFull(),
			"is_empty": c.Ring.IsEmpty(),
		}, nil
	})
}

func (g *Gateway) handleRingAll(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "circular", "all", false, func(c *session.Containers) (fields, error) {
		return fields{"items": c.Ring.Items(), "size": c.Ring.Size()}, nil
	})
}

func (g *Gateway) handleRingClear(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "circular", "clear", true, func(c *session.Containers) (fields, error) {
		c.Ring.Clear()
		return fields{"size": 0}, nil
	})
}

// Priority queue handlers

func (g *Gateway) handlePriorityEnqueue(w http.ResponseWriter, r *http.Request) {
	req, ok := g.decode(w, r)
	if !ok {
		return
	}
	item, ok := g.requireItem(w, req)
	if !ok {
		return
	}
	if req.Priority == nil {
		g.writeError(w, http.StatusBadRequest, "missing required field: priority")
		return
	}
	priority := *req.Priority
	g.run(w, r, "priority", "enqueue", true, func(c *session.Containers) (fields, error) {
		size := c.Priority.Enqueue(item, priority)
		return fields{"item": item, "priority": priority, "size": size}, nil
	})
}

func (g *Gateway) handlePriorityDequeue(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "priority", "dequeue", true, func(c *session.Containers) (fields, error) {
		v, err := c.Priority.Dequeue()
		if err != nil {
			return nil, err
		}
		return fields{"item": v, "size": c.Priority.Size()}, nil
	})
}

func (g *Gateway) handlePriorityFront(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "priority", "front", false, func(c *session.Containers) (fields, error) {
		v, ok := c.Priority.Front()
		if !ok {
			return nil, errors.ErrUnderflow
		}
		return fields{"item": v}, nil
	})
}

func (g *Gateway) handlePrioritySize(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "priority", "size", false, func(c *session.Containers) (fields, error) {
		return fields{"size": c.Priority.Size(), "is_empty": c.Priority.IsEmpty()}, nil
	})
}

func (g *Gateway) handlePriorityAll(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "priority", "all", false, func(c *session.Containers) (fields, error) {
		return fields{"items": c.Priority.Items(), "size": c.Priority.Size()}, nil
	})
}

func (g *Gateway) handlePriorityClear(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "priority", "clear", true, func(c *session.Containers) (fields, error) {
		c.Priority.Clear()
		return fields{"size": 0}, nil
	})
}

// Deque handlers

func (g *Gateway) handleDequePushFront(w http.ResponseWriter, r *http.Request) {
	req, ok := g.decode(w, r)
	if !ok {
		return
	}
	item, ok := g.requireItem(w, req)
	if !ok {
		return
	}
	g.run(w, r, "deque", "push-front", true, func(c *session.Containers) (fields, error) {
		size := c.Deque.PushFront(item)
		return fields{"item": item, "size": size}, nil
	})
}

func (g *Gateway) handleDequePushBack(w http.ResponseWriter, r *http.Request) {
	req, ok := g.decode(w, r)
	if !ok {
		return
	}
	item, ok := g.requireItem(w, req)
	if !ok {
		return
	}
	g.run(w, r, "deque", "push-back", true, func(c *session.Containers) (fields, error) {
		size := c.Deque.PushBack(item)
		return fields{"item": item, "size": size}, nil
	})
}

func (g *Gateway) handleDequePopFront(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "deque", "pop-front", true, func(c *session.Containers) (fields, error) {
		v, err := c.Deque.PopFront()
		if err != nil {
			return nil, err
		}
		return fields{"item": v, "size": c.Deque.Size()}, nil
	})
}

func (g *Gateway) handleDequePopBack(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "deque", "pop-back", true, func(c *session.Containers) (fields, error) {
		v, err := c.Deque.PopBack()
		if err != nil {
			return nil, err
		}
		return fields{"item": v, "size": c.Deque.Size()}, nil
	})
}

func (g *Gateway) handleDequeFront(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "deque", "front", false, func(c *session.Containers) (fields, error) {
		v, ok := c.Deque.Front()
		if !ok {
			return nil, errors.ErrUnderflow
		}
		return fields{"item": v}, nil
	})
}

func (g *Gateway) handleDequeBack(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "deque", "back", false, func(c *session.Containers) (fields, error) {
		v, ok := c.Deque.Back()
		if !ok {
			return nil, errors.ErrUnderflow
		}
		return fields{"item": v}, nil
	})
}

func (g *Gateway) handleDequeSize(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "deque", "size", false, func(c *session.Containers) (fields, error) {
		return fields{"size": c.Deque.Size(), "is_empty": c.Deque.IsEmpty()}, nil
	})
}

func (g *Gateway) handleDequeAll(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "deque", "all", false, func(c *session.Containers) (fields, error) {
		return fields{"items": c.Deque.Items(), "size": c.Deque.Size()}, nil
	})
}

func (g *Gateway) handleDequeClear(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, "deque", "clear", true, func(c *session.Containers) (fields, error) {
		c.Deque.Clear()
		return fields{"size": 0}, nil
	})
}

// Utility handlers. These are pure functions, so no session is involved.

func (g *Gateway) recordUtil(op, outcome string) {
	if g.metrics != nil {
		g.metrics.RecordOperation("util", op, outcome)
	}
}

func (g *Gateway) handleUtilBalanced(w http.ResponseWriter, r *http.Request) {
	req, ok := g.decode(w, r)
	if !ok {
		return
	}
	if req.Expression == nil {
		g.writeError(w, http.StatusBadRequest, "missing required field: expression")
		return
	}
	g.recordUtil("balanced", "success")
	g.writeSuccess(w, fields{
		"expression": *req.Expression,
		"balanced":   stackops.IsBalanced(*req.Expression),
	})
}

func (g *Gateway) handleUtilReverse(w http.ResponseWriter, r *http.Request) {
	req, ok := g.decode(w, r)
	if !ok {
		return
	}
	if req.Text == nil {
		g.writeError(w, http.StatusBadRequest, "missing required field: text")
		return
	}
	g.recordUtil("reverse", "success")
	g.writeSuccess(w, fields{
		"text":     *req.Text,
		"reversed": stackops.Reverse(*req.Text),
	})
}

func (g *Gateway) handleUtilBinary(w http.ResponseWriter, r *http.Request) {
	req, ok := g.decode(w, r)
	if !ok {
		return
	}
	if req.Number == nil {
		g.writeError(w, http.StatusBadRequest, "missing required field: number")
		return
	}
	binary, err := stackops.ToBinary(*req.Number)
	if err != nil {
		g.recordUtil("binary", "invalid")
		g.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	g.recordUtil("binary", "success")
	g.writeSuccess(w, fields{"number": *req.Number, "binary": binary})
}

// Session handlers

func (g *Gateway) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	s, err := g.sessions.Create()
	if err != nil {
		g.writeError(w, statusFor(err), err.Error())
		return
	}
	g.writeJSON(w, http.StatusCreated, fields{"status": "success", "session_id": s.ID()})
}

func (g *Gateway) handleSessionDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !g.sessions.Delete(id) {
		g.writeError(w, http.StatusNotFound, errors.ErrSessionNotFound.Error())
		return
	}
	g.writeSuccess(w, fields{"session_id": id})
}

// Service handlers

func (g *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	st := g.Health()
	code := http.StatusOK
	if st.IsUnhealthy() {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(st); err != nil {
		g.logger.Debug("health response write failed", "error", err)
	}
}

func (g *Gateway) handleInfo(w http.ResponseWriter, r *http.Request) {
	endpoints := make([]fields, 0, len(routeTable)+1)
	for _, rt := range routeTable {
		endpoints = append(endpoints, fields{"method": rt.Method, "path": rt.Path})
	}
	endpoints = append(endpoints, fields{"method": "GET", "path": "/api/watch"})

	g.writeSuccess(w, fields{
		"service":   "linearkit",
		"sessions":  g.sessions.Count(),
		"endpoints": endpoints,
	})
}
