// Copyright © 2020 The Pea Authors under an MIT-style license.

package decl

import (
	"strings"
)

// BuiltinMod is the module path of the built-in declarations.
const BuiltinMod = "builtin"

const prelude = `
open class Any {
	open fun equals(other: Any?): Boolean
	open fun hashCode(): Int
	open fun toString(): String
}

class Nothing
object Unit
class Boolean
class String

abstract class Number {
	abstract fun toInt(): Int
	abstract fun toDouble(): Double
}

class Int : Number() {
	override fun toInt(): Int
	override fun toDouble(): Double
}

class Long : Number() {
	override fun toInt(): Int
	override fun toDouble(): Double
}

class Double : Number() {
	override fun toInt(): Int
	override fun toDouble(): Double
}

interface Comparable<in T> {
	fun compareTo(other: T): Int
}

interface Iterable<out E>

interface List<out E> : Iterable<E> {
	val size: Int
	fun get(index: Int): E
}

interface MutableList<E> : List<E> {
	fun add(element: E): Boolean
	fun set(index: Int, element: E): E
}
`

func preludeMod() *Mod {
	p := NewParserWithLocs(BuiltinMod, nil)
	if err := p.Parse("<builtin>", strings.NewReader(prelude)); err != nil {
		panic("bad prelude: " + err.Error())
	}
	return p.Mod()
}
