package godynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ggarcia209/go-aws-samples/goaws"
)

/* Expression wrapper type & methods */

// Expression wraps the AWS expression.Expression object.
// The zero value is an empty expression.
type Expression struct {
	expr expression.Expression
}

func NewExpression() Expression {
	return Expression{}
}

// Condition returns the Condition expression.
func (e Expression) Condition() *string {
	return e.expr.Condition()
}

// Filter returns the Filter expression.
func (e Expression) Filter() *string {
	return e.expr.Filter()
}

// KeyCondition returns the KeyCondition expression.
func (e Expression) KeyCondition() *string {
	return e.expr.KeyCondition()
}

// Names returns the expression's attribute names.
func (e Expression) Names() map[string]string {
	return e.expr.Names()
}

// Projection returns the Projection expression.
func (e Expression) Projection() *string {
	return e.expr.Projection()
}

// Update returns the Update expression.
func (e Expression) Update() *string {
	return e.expr.Update()
}

// Values returns the expression's attribute values.
func (e Expression) Values() map[string]types.AttributeValue {
	return e.expr.Values()
}

/* ExprBuilder wrapper type & methods */

// ExprBuilder is used to contain Builder types (Condition, Filter, etc...)
// and build DynamoDB expressions.
type ExprBuilder struct {
	Condition    *expression.ConditionBuilder
	Filter       *expression.ConditionBuilder
	KeyCondition *expression.KeyConditionBuilder
	Projection   *expression.ProjectionBuilder
	Update       *expression.UpdateBuilder
}

func NewExprBuilder() *ExprBuilder {
	return &ExprBuilder{}
}

// SetCondition sets the condition checked before a write.
func (e *ExprBuilder) SetCondition(cond *Conditions) {
	if cond == nil || !cond.set {
		return
	}
	c := cond.Condition
	e.Condition = &c
}

// SetFilter sets an equality filter on the given field name and value.
func (e *ExprBuilder) SetFilter(name string, value any) {
	filt := expression.Name(name).Equal(expression.Value(value))
	e.Filter = &filt
}

// SetKeyCondition sets an equality key condition on the partition key.
func (e *ExprBuilder) SetKeyCondition(name string, value any) {
	kc := expression.Key(name).Equal(expression.Value(value))
	e.KeyCondition = &kc
}

// SetProjection creates a ProjectionBuilder object from the given list of field names.
func (e *ExprBuilder) SetProjection(names []string) {
	if len(names) == 0 {
		return
	}
	proj := expression.NamesList(expression.Name(names[0]))
	for _, name := range names[1:] {
		proj = proj.AddNames(expression.Name(name))
	}
	e.Projection = &proj
}

// SetUpdate sets the Update field with a predefined UpdateExpr object.
func (e *ExprBuilder) SetUpdate(update *UpdateExpr) {
	if update == nil || !update.set {
		return
	}
	u := update.Update
	e.Update = &u
}

// BuildExpression builds the expression from the ExprBuilder fields and returns the object.
// A builder with no fields set builds the empty expression.
func (e *ExprBuilder) BuildExpression() (Expression, error) {
	if e.Condition == nil && e.Filter == nil && e.KeyCondition == nil && e.Projection == nil && e.Update == nil {
		return NewExpression(), nil
	}

	eb := expression.NewBuilder()
	if e.Condition != nil {
		eb = eb.WithCondition(*e.Condition)
	}
	if e.Filter != nil {
		eb = eb.WithFilter(*e.Filter)
	}
	if e.KeyCondition != nil {
		eb = eb.WithKeyCondition(*e.KeyCondition)
	}
	if e.Projection != nil {
		eb = eb.WithProjection(*e.Projection)
	}
	if e.Update != nil {
		eb = eb.WithUpdate(*e.Update)
	}

	build, err := eb.Build()
	if err != nil {
		return Expression{}, goaws.NewClientError(fmt.Errorf("eb.Build: %w", err))
	}
	return Expression{expr: build}, nil
}

// Reset clears all values of the ExprBuilder object.
func (e *ExprBuilder) Reset() {
	e.Condition = nil
	e.Filter = nil
	e.KeyCondition = nil
	e.Projection = nil
	e.Update = nil
}

/* UpdateExpr wrapper type & methods */

// UpdateExpr is used to construct Update Expressions.
type UpdateExpr struct {
	Update expression.UpdateBuilder
	set    bool
}

func NewUpdateExpr() *UpdateExpr {
	return &UpdateExpr{}
}

// Add adds value to a number or set attribute.
func (u *UpdateExpr) Add(name string, value any) {
	u.Update, u.set = u.Update.Add(expression.Name(name), expression.Value(value)), true
}

// Delete deletes the specified value set from the specified field name.
func (u *UpdateExpr) Delete(name string, value any) {
	u.Update, u.set = u.Update.Delete(expression.Name(name), expression.Value(value)), true
}

// Remove removes the specified field name entirely.
func (u *UpdateExpr) Remove(name string) {
	u.Update, u.set = u.Update.Remove(expression.Name(name)), true
}

// Set sets the value for the given field name with no conditions.
func (u *UpdateExpr) Set(name string, value any) {
	u.Update, u.set = u.Update.Set(expression.Name(name), expression.Value(value)), true
}

// SetIfNotExists sets a new field + value conditionally, if the given field name does not exist.
func (u *UpdateExpr) SetIfNotExists(name string, value any) {
	u.Update, u.set = u.Update.Set(expression.Name(name), expression.IfNotExists(expression.Name(name), expression.Value(value))), true
}

// SetMinus sets name to the value of the field from minus sub.
//
//	Ex: 'SET #name = #from - :sub'
func (u *UpdateExpr) SetMinus(name, from string, sub any) {
	u.Update, u.set = u.Update.Set(expression.Name(name), expression.Minus(expression.Name(from), expression.Value(sub))), true
}

// SetPlus sets name to the value of the field aug plus add.
func (u *UpdateExpr) SetPlus(name, aug string, add any) {
	u.Update, u.set = u.Update.Set(expression.Name(name), expression.Plus(expression.Name(aug), expression.Value(add))), true
}

/* Conditions wrapper type & methods */

// Conditions accumulates conditions joined with AND.
type Conditions struct {
	Condition expression.ConditionBuilder
	set       bool
}

func NewCondition() *Conditions {
	return &Conditions{}
}

func (c *Conditions) and(cond expression.ConditionBuilder) {
	if !c.set {
		c.Condition, c.set = cond, true
		return
	}
	c.Condition = c.Condition.And(cond)
}

func (c *Conditions) Equal(name string, value any) {
	c.and(expression.Name(name).Equal(expression.Value(value)))
}

func (c *Conditions) NotEqual(name string, value any) {
	c.and(expression.Name(name).NotEqual(expression.Value(value)))
}

func (c *Conditions) GreaterThanEqual(name string, value any) {
	c.and(expression.Name(name).GreaterThanEqual(expression.Value(value)))
}

func (c *Conditions) LessThan(name string, value any) {
	c.and(expression.Name(name).LessThan(expression.Value(value)))
}

// AttributeExists requires the item to already have name.
func (c *Conditions) AttributeExists(name string) {
	c.and(expression.AttributeExists(expression.Name(name)))
}

// AttributeNotExists requires the item not to have name, e.g. to prevent
// overwriting an existing item on put.
func (c *Conditions) AttributeNotExists(name string) {
	c.and(expression.AttributeNotExists(expression.Name(name)))
}
