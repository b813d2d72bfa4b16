package ast

import "github.com/mcjo163/xb/internal/value"

func NewAdd(lhs, rhs Expr) Expr      { return newBinary(lhs, rhs, value.Add) }
func NewSubtract(lhs, rhs Expr) Expr { return newBinary(lhs, rhs, value.Sub) }
func NewMultiply(lhs, rhs Expr) Expr { return newBinary(lhs, rhs, value.Mul) }
func NewDivide(lhs, rhs Expr) Expr   { return newBinary(lhs, rhs, value.Div) }
func NewIntDivide(lhs, rhs Expr) Expr { return newBinary(lhs, rhs, value.IntDiv) }
func NewMod(lhs, rhs Expr) Expr      { return newBinary(lhs, rhs, value.Mod) }
func NewPow(lhs, rhs Expr) Expr      { return newBinary(lhs, rhs, value.Pow) }
